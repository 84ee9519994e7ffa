package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHook(t *testing.T) *test.Hook {
	t.Helper()

	hook := test.NewGlobal()
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	return hook
}

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name         string
		panicPayload any
		wantError    string
	}{
		{"성공: 문자열 패닉 복구", "치명적인 오류 발생", "치명적인 오류 발생"},
		{"성공: 에러 패닉 복구", errors.New("에러 패닉"), "에러 패닉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := newTestHook(t)

			e := echo.New()
			e.Use(PanicRecovery())
			e.GET("/", func(echo.Context) error {
				panic(tt.panicPayload)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, logrus.ErrorLevel, entry.Level)
			assert.Contains(t, entry.Data["error"].(error).Error(), tt.wantError)
			assert.True(t, apperrors.Is(entry.Data["error"].(error), apperrors.Internal))

			stack, ok := entry.Data["stack"].(string)
			require.True(t, ok)
			assert.Contains(t, stack, "Stack trace:")
			assert.Contains(t, stack, "middleware_test.go")
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	t.Run("성공: 요청 정보 기록 및 민감 정보 마스킹", func(t *testing.T) {
		hook := newTestHook(t)

		e := echo.New()
		e.Use(HTTPLogger())
		e.GET("/", func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?token=secret123&id=1", nil))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "HTTP 요청", entry.Message)
		assert.Equal(t, http.MethodGet, entry.Data["method"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, "2", entry.Data["bytes_out"])
		assert.Equal(t, defaultBytesIn, entry.Data["bytes_in"])
		assert.NotContains(t, entry.Data["uri"], "secret123")
	})

	t.Run("성공: 핸들러 에러는 에러 핸들러로 전달", func(t *testing.T) {
		newTestHook(t)

		e := echo.New()
		e.Use(HTTPLogger())
		e.GET("/", func(echo.Context) error {
			return echo.NewHTTPError(http.StatusTeapot)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestMaskSensitiveQueryParams(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"/", "/"},
		{"/?id=100", "/?id=100"},
		{"/?token=secret123&id=100", "/?id=100&token=secr%2A%2A%2A"},
		{"/?password=ab", "/?password=%2A%2A%2A"},
		{"%zz", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestLogger(t *testing.T) {
	logger := logrus.New()
	adapter := NewLogger(logger)

	t.Run("레벨 변환", func(t *testing.T) {
		adapter.SetLevel(log.WARN)
		assert.Equal(t, applog.WarnLevel, logger.Level)
		assert.Equal(t, log.WARN, adapter.Level())

		adapter.SetLevel(log.OFF)
		assert.Equal(t, applog.WarnLevel, logger.Level, "OFF는 무시합니다")

		logger.SetLevel(applog.TraceLevel)
		assert.Equal(t, log.OFF, adapter.Level())
	})

	t.Run("로그 전달", func(t *testing.T) {
		hook := test.NewLocal(logger)
		logger.SetLevel(applog.DebugLevel)

		adapter.Infoj(log.JSON{"key": "value"})
		adapter.Warnf("경고 %d", 1)

		require.Len(t, hook.AllEntries(), 2)
		assert.Equal(t, "value", hook.AllEntries()[0].Data["key"])
		assert.Equal(t, "echo", hook.AllEntries()[0].Data["component"])
		assert.Equal(t, "경고 1", hook.LastEntry().Message)
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	assert.Empty(t, adapter.Prefix())
	assert.Equal(t, logger.Out, adapter.Output())
}
