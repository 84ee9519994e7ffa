// Package log 애플리케이션 전역 로거(logrus)에 대한 얇은 파사드를 제공합니다.
//
// 모든 로그는 "component" 필드를 포함하도록 WithComponent 계열 함수를 통해 기록합니다.
package log

import (
	"maps"

	"github.com/sirupsen/logrus"
)

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithFields 주어진 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
// 호출자가 넘긴 fields 맵은 수정하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	maps.Copy(newFields, fields)
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

// SetDebugMode Debug 모드 여부에 따라 전역 로그 레벨을 조정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}
