package log

import (
	"fmt"
	"os"
)

// Options 로거 설정입니다.
type Options struct {
	Name  string // 로그 파일명에 사용될 애플리케이션 식별자
	Dir   string // 로그 파일 디렉토리 (빈 값이면 "logs")
	Level Level  // 로그 레벨 (0이면 Info)

	MaxAge     int // 오래된 로그 보관 일수 (0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 최대 크기 (0: 기본값 100MB)
	MaxBackups int // 최대 백업 파일 수 (0: 기본값 20개)

	EnableCriticalLog bool // ERROR 이상을 별도 파일로 분리 저장
	EnableVerboseLog  bool // DEBUG 이하를 별도 파일로 분리 저장
	EnableConsoleLog  bool // 표준 출력에도 기록

	// 로그를 호출한 함수와 라인번호를 함께 기록할지 여부
	ReportCaller bool

	// 호출자 함수명에서 잘라낼 경로 접두어
	// 예: "github.com/darkkaiser" → "github.com/darkkaiser/posta-pra-mim/cmd.main" 은 ".../posta-pra-mim/cmd.main"
	CallerPathPrefix string
}

// Validate Options 필드 값의 유효성을 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}
