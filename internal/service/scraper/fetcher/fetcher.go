// Package fetcher 상품 페이지를 내려받는 HTTP 클라이언트 체인을 제공합니다.
//
// 각 구현체는 Fetcher 인터페이스를 감싸는 데코레이터로 구성됩니다:
//
//	f := fetcher.NewLoggingFetcher(fetcher.NewUserAgentFetcher(fetcher.NewHTTPFetcher(), nil))
package fetcher

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const component = "scraper.fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// New 기본 구성의 Fetcher 체인(로깅 → User-Agent 주입 → HTTP 전송)을 생성합니다.
func New() Fetcher {
	return NewLoggingFetcher(NewUserAgentFetcher(NewHTTPFetcher(), nil))
}

// Get 지정된 URL로 HTTP GET 요청을 전송합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "요청 URL(%s)이 올바르지 않습니다", url)
	}

	resp, err := f.Do(req)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Unavailable, "페이지(%s) 요청 중 네트워크 에러가 발생했습니다", url)
	}

	return resp, nil
}

// FetchText 지정된 URL의 응답 본문 전체를 UTF-8 문자열로 반환합니다.
//
// 응답 상태 코드는 검사하지 않습니다. 에러 페이지도 정상 응답으로 취급하며,
// 본문에서 원하는 값을 찾지 못하는 것은 호출자가 판단할 몫입니다.
func FetchText(ctx context.Context, f Fetcher, url string) (string, error) {
	resp, err := Get(ctx, f, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return ReadBody(resp)
}

// ReadBody 응답 본문을 모두 읽어 UTF-8 문자열로 반환합니다.
//
// Content-Type 헤더에 charset이 명시된 경우에만 해당 인코딩으로 변환하고,
// 그 외에는 UTF-8로 취급합니다(BOM이 있으면 BOM을 따릅니다).
// 본문 내용으로 인코딩을 추측하지 않습니다.
func ReadBody(resp *http.Response) (string, error) {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ExecutionFailed, "응답 본문을 읽는 중 에러가 발생했습니다")
	}

	var decoder transform.Transformer = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if label := declaredCharset(resp.Header.Get("Content-Type")); label != "" {
		if enc, _ := charset.Lookup(label); enc != nil {
			decoder = unicode.BOMOverride(enc.NewDecoder())
		}
	}

	decoded, _, err := transform.Bytes(decoder, b)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ExecutionFailed, "응답 본문의 인코딩 변환에 실패했습니다")
	}

	return string(decoded), nil
}

// declaredCharset Content-Type 헤더의 charset 파라미터를 반환합니다. 없으면 빈 문자열입니다.
func declaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(params["charset"])
}
