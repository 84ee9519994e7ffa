package fetcher

import (
	"net/http"
	"net/url"
	"time"

	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
)

// LoggingFetcher 요청 결과와 소요 시간을 로그로 남기는 Fetcher입니다.
type LoggingFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*LoggingFetcher)(nil)

func NewLoggingFetcher(delegate Fetcher) *LoggingFetcher {
	return &LoggingFetcher{delegate: delegate}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := f.delegate.Do(req)

	fields := applog.Fields{
		"method":   req.Method,
		"url":      RedactURL(req.URL),
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status_code"] = resp.StatusCode
	}

	if err != nil {
		fields["error"] = err.Error()
		applog.WithComponentAndFields(component, fields).WithContext(req.Context()).Error("HTTP 요청 실패")
		return resp, err
	}

	applog.WithComponentAndFields(component, fields).WithContext(req.Context()).Debug("HTTP 요청 완료")

	return resp, nil
}

// RedactURL 로그에 남길 수 있도록 URL의 사용자 정보와 쿼리 문자열 값을 가립니다.
// 공유 링크의 쿼리에는 추적용 식별자가 포함되는 경우가 많습니다.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	redacted := *u
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			redacted.User = url.UserPassword(u.User.Username(), "xxxxx")
		}
	}

	if redacted.RawQuery != "" {
		q := redacted.Query()
		for k := range q {
			q.Set(k, "xxxxx")
		}
		redacted.RawQuery = q.Encode()
	}

	return redacted.String()
}
