// Package strutil 로그 기록용 문자열 가공 함수를 제공합니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// Mask 토큰, 키 등의 민감한 정보를 로그에 남길 수 있도록 마스킹합니다.
//
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 표시
//   - 그 외: 앞 4자 + 뒤 4자 표시
func Mask(data string) string {
	if data == "" {
		return ""
	}

	if len(data) <= 3 {
		return "***"
	}

	if len(data) <= 12 {
		return data[:4] + "***"
	}

	return data[:4] + "***" + data[len(data)-4:]
}

// Truncate 문자열을 최대 maxRunes 글자로 자르고, 잘린 경우 말줄임표(...)를 붙입니다.
// 멀티바이트 문자가 중간에 잘리지 않도록 rune 단위로 계산합니다.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	var sb strings.Builder
	n := 0
	for _, r := range s {
		if n == maxRunes {
			break
		}
		sb.WriteRune(r)
		n++
	}
	sb.WriteString("...")

	return sb.String()
}
