// Package handler API 엔드포인트 핸들러를 제공합니다.
package handler

import (
	"net/http"

	"github.com/darkkaiser/posta-pra-mim/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// StatusHandler 봇이 실행 중임을 알리는 고정 문구를 반환합니다.
func StatusHandler(c echo.Context) error {
	return c.String(http.StatusOK, constants.StatusMessage)
}
