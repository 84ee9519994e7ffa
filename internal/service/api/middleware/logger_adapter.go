package middleware

import (
	"io"

	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

var toEchoLevel = map[applog.Level]log.Lvl{
	applog.DebugLevel: log.DEBUG,
	applog.InfoLevel:  log.INFO,
	applog.WarnLevel:  log.WARN,
	applog.ErrorLevel: log.ERROR,
}

var fromEchoLevel = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

// Logger Echo 내부 로그(gommon log.Logger)를 애플리케이션 로거로 전달하는 어댑터입니다.
type Logger struct {
	logger *applog.Logger
}

var _ echo.Logger = Logger{}

// NewLogger 주어진 로거로 로그를 전달하는 어댑터를 생성합니다.
func NewLogger(logger *applog.Logger) Logger {
	return Logger{logger: logger}
}

func (l Logger) entry() *applog.Entry {
	return l.logger.WithField("component", "echo")
}

func (l Logger) entryWith(j log.JSON) *applog.Entry {
	return l.entry().WithFields(applog.Fields(j))
}

func (l Logger) Output() io.Writer { return l.logger.Out }
func (l Logger) SetOutput(w io.Writer) { l.logger.SetOutput(w) }

// Prefix, Header 기능은 사용하지 않는다.
func (l Logger) Prefix() string { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}

// Level Echo에 대응하는 레벨이 없으면(Trace, Fatal, Panic) OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := toEchoLevel[l.logger.Level]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel 대응하는 레벨이 없는 OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := fromEchoLevel[lvl]; ok {
		l.logger.SetLevel(level)
	}
}

func (l Logger) Print(i ...any) { l.entry().Print(i...) }
func (l Logger) Printf(format string, args ...any) { l.entry().Printf(format, args...) }
func (l Logger) Printj(j log.JSON) { l.entryWith(j).Print() }

func (l Logger) Debug(i ...any) { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, args ...any) { l.entry().Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON) { l.entryWith(j).Debug() }

func (l Logger) Info(i ...any) { l.entry().Info(i...) }
func (l Logger) Infof(format string, args ...any) { l.entry().Infof(format, args...) }
func (l Logger) Infoj(j log.JSON) { l.entryWith(j).Info() }

func (l Logger) Warn(i ...any) { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, args ...any) { l.entry().Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON) { l.entryWith(j).Warn() }

func (l Logger) Error(i ...any) { l.entry().Error(i...) }
func (l Logger) Errorf(format string, args ...any) { l.entry().Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON) { l.entryWith(j).Error() }

func (l Logger) Fatal(i ...any) { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, args ...any) { l.entry().Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON) { l.entryWith(j).Fatal() }

func (l Logger) Panic(i ...any) { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, args ...any) { l.entry().Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON) { l.entryWith(j).Panic() }
