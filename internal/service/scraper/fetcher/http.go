package fetcher

import (
	"net/http"
)

// HTTPFetcher http.Client로 실제 요청을 전송하는 Fetcher입니다.
//
// 요청 시간 제한, 재시도, 응답 크기 제한을 두지 않습니다.
// 요청을 중단하려면 요청 Context를 취소해야 합니다.
type HTTPFetcher struct {
	client *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher() *HTTPFetcher {
	return NewHTTPFetcherWithClient(&http.Client{})
}

// NewHTTPFetcherWithClient 전달받은 http.Client를 사용하는 HTTPFetcher를 생성합니다. (테스트용 Transport 주입 등)
func NewHTTPFetcherWithClient(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return f.client.Do(req)
}
