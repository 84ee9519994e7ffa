// Package sheet 상품 정보를 구글 스프레드시트의 행으로 기록합니다.
package sheet

import (
	"context"

	"github.com/darkkaiser/posta-pra-mim/internal/config"
	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/darkkaiser/posta-pra-mim/pkg/strutil"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const component = "sheet"

// Appender 스프레드시트의 지정된 범위 끝에 행을 추가합니다.
// 여러 고루틴에서 동시에 호출할 수 있으며, 추가 순서는 보장하지 않습니다.
type Appender interface {
	Append(ctx context.Context, row Row) error
}

// GoogleAppender Google Sheets API로 행을 추가하는 Appender입니다.
// 서비스 계정 인증 세션은 생성 시 한 번 만들어 프로세스 수명 동안 재사용합니다.
type GoogleAppender struct {
	values *sheets.SpreadsheetsValuesService

	spreadsheetID    string
	rangeA1          string
	valueInputOption string
}

var _ Appender = (*GoogleAppender)(nil)

// NewGoogleAppender 서비스 계정 JWT로 인증하는 GoogleAppender를 생성합니다.
func NewGoogleAppender(ctx context.Context, cfg config.SheetConfig) (*GoogleAppender, error) {
	jwtConfig := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"spreadsheet_id":  strutil.Mask(cfg.SpreadsheetID),
		"service_account": strutil.Mask(cfg.ServiceAccountEmail),
		"range":           cfg.Range,
	}).Debug("Google Sheets 클라이언트 생성")

	// 토큰 갱신에 사용되는 Context이므로 요청 단위 Context가 아닌 수명이 긴 Context를 사용한다.
	return newGoogleAppender(ctx, cfg, option.WithHTTPClient(jwtConfig.Client(context.WithoutCancel(ctx))))
}

func newGoogleAppender(ctx context.Context, cfg config.SheetConfig, opts ...option.ClientOption) (*GoogleAppender, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "Google Sheets 클라이언트 생성에 실패했습니다")
	}

	return &GoogleAppender{
		values: srv.Spreadsheets.Values,

		spreadsheetID:    cfg.SpreadsheetID,
		rangeA1:          cfg.Range,
		valueInputOption: cfg.ValueInputOption,
	}, nil
}

// Append 행 하나를 추가합니다. 실패해도 재시도하지 않습니다.
func (a *GoogleAppender) Append(ctx context.Context, row Row) error {
	resp, err := a.values.Append(a.spreadsheetID, a.rangeA1, &sheets.ValueRange{
		Values: [][]any{row.Values()},
	}).ValueInputOption(a.valueInputOption).Context(ctx).Do()
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "스프레드시트(%s)에 행을 추가하지 못했습니다", a.rangeA1)
	}

	fields := applog.Fields{"range": a.rangeA1}
	if resp.Updates != nil {
		fields["updated_range"] = resp.Updates.UpdatedRange
		fields["updated_rows"] = resp.Updates.UpdatedRows
	}
	applog.WithComponentAndFields(component, fields).WithContext(ctx).Info("스프레드시트 행 추가 완료")

	return nil
}
