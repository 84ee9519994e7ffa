// Package httputil Echo 서버의 공통 응답 처리를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/posta-pra-mim/internal/service/api/constants"
	"github.com/darkkaiser/posta-pra-mim/internal/service/api/model/response"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo의 전역 에러 핸들러입니다.
//
// 모든 에러를 ErrorResponse JSON으로 응답하며, 4xx는 Warn, 5xx는 Error 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code == http.StatusNotFound {
		message = constants.ErrMsgNotFound
	}

	logger := applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	})

	switch {
	case code >= http.StatusInternalServerError:
		logger.Error(constants.LogMsgHTTP5xxServerError)
	case code >= http.StatusBadRequest:
		logger.Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}
