package sheet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/darkkaiser/posta-pra-mim/internal/config"
	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func testSheetConfig() config.SheetConfig {
	return config.SheetConfig{
		SpreadsheetID:       "sheet-id",
		ServiceAccountEmail: "bot@example.iam.gserviceaccount.com",
		PrivateKey:          "unused",
		Range:               config.DefaultSheetRange,
		ValueInputOption:    config.DefaultValueInputOption,
	}
}

func newTestAppender(t *testing.T, srv *httptest.Server) *GoogleAppender {
	t.Helper()

	a, err := newGoogleAppender(context.Background(), testSheetConfig(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return a
}

func TestGoogleAppender_Append(t *testing.T) {
	t.Run("성공: RAW 입력 방식으로 한 행 추가", func(t *testing.T) {
		var (
			gotPath   string
			gotMethod string
			gotOption string
			gotBody   struct {
				Values [][]string `json:"values"`
			}
		)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			gotOption = r.URL.Query().Get("valueInputOption")

			b, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(b, &gotBody)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-id","updates":{"updatedRange":"Página1!A2:L2","updatedRows":1}}`))
		}))
		defer srv.Close()

		row := Row{"Caneca Azul", "https://shopee.com.br/produto-x", "Shopee", "Geral", "http://x/img.png", "R$ 2.00", "R$ 1.50", HookPlaceholder, CallToAction, "", StatusPending, FlagYes}

		err := newTestAppender(t, srv).Append(context.Background(), row)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.True(t, strings.HasPrefix(gotPath, "/v4/spreadsheets/sheet-id/values/"), gotPath)
		assert.True(t, strings.HasSuffix(gotPath, ":append"), gotPath)
		assert.Contains(t, gotPath, "Página1!A:L")
		assert.Equal(t, "RAW", gotOption)
		require.Len(t, gotBody.Values, 1)
		assert.Equal(t, row[:], gotBody.Values[0])
	})

	t.Run("실패: API 에러는 재시도하지 않음", func(t *testing.T) {
		var calls atomic.Int32

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
		}))
		defer srv.Close()

		err := newTestAppender(t, srv).Append(context.Background(), Row{})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
		assert.Contains(t, err.Error(), "permission")
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestNewGoogleAppender(t *testing.T) {
	a, err := NewGoogleAppender(context.Background(), testSheetConfig())

	require.NoError(t, err, "개인키는 첫 요청 시점에 사용됩니다")
	assert.Equal(t, "sheet-id", a.spreadsheetID)
	assert.Equal(t, config.DefaultSheetRange, a.rangeA1)
	assert.Equal(t, "RAW", a.valueInputOption)
}
