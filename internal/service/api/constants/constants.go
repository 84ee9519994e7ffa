// Package constants API 서비스 전반에서 사용하는 상수를 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트)를 식별하기 위한 상수입니다.
const (
	ComponentService      = "api.service"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)

// HTTP 서버 설정 기본값입니다.
const (
	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 60 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultMaxBodySize 요청 본문 최대 크기
	DefaultMaxBodySize = "64K"
)

// StatusMessage 상태 확인(GET /) 응답 본문입니다.
const StatusMessage = "🤖 Bot Posta Pra Mim ativo e rodando!"

// 클라이언트에게 반환되는 에러 메시지입니다.
const (
	ErrMsgNotFound       = "페이지를 찾을 수 없습니다."
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다."
)

// 서비스 생명주기 로그 메시지입니다.
const (
	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버 실행 중 치명적인 오류가 발생했습니다"

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
	LogMsgPanicRecovered     = "패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다"
)

// SensitiveQueryParams 요청 로그에서 값을 가려야 하는 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
