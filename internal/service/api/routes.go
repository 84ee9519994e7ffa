package api

import (
	"github.com/darkkaiser/posta-pra-mim/internal/service/api/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.StatusHandler)
}
