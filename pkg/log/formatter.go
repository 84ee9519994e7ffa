package log

import "github.com/sirupsen/logrus"

// silentFormatter 아무것도 출력하지 않는 포맷터입니다.
// 실제 포맷팅은 hook에서 한 번만 수행하고, logrus 기본 출력 경로의 중복 포맷팅은 막습니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
