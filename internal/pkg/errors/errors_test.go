package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(InvalidInput, "TELEGRAM_TOKEN이 설정되지 않았습니다")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, InvalidInput, appErr.Type())
	assert.Equal(t, "TELEGRAM_TOKEN이 설정되지 않았습니다", appErr.Message())
	assert.Equal(t, "[InvalidInput] TELEGRAM_TOKEN이 설정되지 않았습니다", err.Error())
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestNew")
}

func TestNewf(t *testing.T) {
	err := Newf(NotFound, "경로(%s)를 찾을 수 없습니다", "/missing")

	assert.Equal(t, "[NotFound] 경로(/missing)를 찾을 수 없습니다", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil 에러는 nil 반환", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, System, "message"))
		assert.Nil(t, Wrapf(nil, System, "message %d", 1))
	})

	t.Run("원인 에러를 보존", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Wrapf(cause, Unavailable, "페이지 요청 실패 (%s)", "shopee.com.br")

		assert.Equal(t, "[Unavailable] 페이지 요청 실패 (shopee.com.br): connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.Same(t, cause, RootCause(err))
	})
}

func TestIs(t *testing.T) {
	inner := New(InvalidInput, "invalid")
	outer := Wrap(inner, System, "load failed")
	std := fmt.Errorf("std: %w", outer)

	assert.True(t, Is(std, System))
	assert.True(t, Is(std, InvalidInput))
	assert.False(t, Is(std, NotFound))
	assert.False(t, Is(nil, Unknown))
	assert.False(t, Is(errors.New("plain"), Unknown))
}

func TestUnderlyingType(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", errors.New("plain"), Unknown},
		{"단일 AppError", New(ExecutionFailed, "x"), ExecutionFailed},
		{"중첩 AppError", Wrap(New(Unavailable, "dial"), ExecutionFailed, "scrape"), Unavailable},
		{"외부 에러 래핑", Wrap(errors.New("eof"), Internal, "x"), Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnderlyingType(tt.err))
		})
	}
}

func TestRootCause_Nil(t *testing.T) {
	assert.Nil(t, RootCause(nil))
}

func TestAppError_Format(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrap(Wrap(cause, Unavailable, "dial"), ExecutionFailed, "append")

	t.Run("%v 와 %s 는 Error()와 동일", func(t *testing.T) {
		assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
		assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
		assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
	})

	t.Run("%+v 는 체인과 스택을 출력", func(t *testing.T) {
		out := fmt.Sprintf("%+v", err)

		assert.Contains(t, out, "[ExecutionFailed] append")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "[Unavailable] dial")
		assert.Contains(t, out, "\ttimeout")
		assert.Equal(t, 1, strings.Count(out, "Stack trace:"), "스택은 체인 끝에서 한 번만 출력되어야 합니다")
	})
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "ExecutionFailed", ExecutionFailed.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
}
