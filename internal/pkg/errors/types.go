package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 복구된 panic 등)
	Internal

	// System 프로세스 환경 또는 인프라 오류 (파일, 클라이언트 생성 실패 등)
	System

	// InvalidInput 잘못된 설정값 또는 입력값
	InvalidInput

	// NotFound 요청한 리소스가 존재하지 않음
	NotFound

	// ExecutionFailed 외부 API 호출이나 응답 처리 실패
	ExecutionFailed

	// Unavailable 원격 서버에 연결할 수 없음
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
