package api

import (
	"github.com/darkkaiser/posta-pra-mim/internal/service/api/constants"
	"github.com/darkkaiser/posta-pra-mim/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/posta-pra-mim/internal/service/api/middleware"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool
}

// NewHTTPServer 미들웨어를 적용한 Echo 인스턴스를 생성합니다. 라우트는 등록하지 않습니다.
//
// 미들웨어 적용 순서:
//  1. PanicRecovery: 이후 미들웨어의 panic까지 복구
//  2. RequestID: 로그에 request_id가 포함되도록 로깅보다 먼저
//  3. Server 헤더 제거
//  4. HTTPLogger
//  5. BodyLimit
//  6. Secure: 보안 헤더
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewLogger(applog.StandardLogger())

	e.HTTPErrorHandler = httputil.ErrorHandler

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.Secure())

	return e
}
