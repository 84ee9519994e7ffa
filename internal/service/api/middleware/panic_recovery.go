package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"github.com/darkkaiser/posta-pra-mim/internal/service/api/constants"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/labstack/echo/v4"
)

// PanicRecovery panic을 복구하고 로깅하는 미들웨어를 반환합니다.
// 복구한 값은 AppError(Internal)로 감싸 panic 지점의 스택과 함께 기록하고,
// Echo의 에러 핸들러로 전달하여 500 응답이 되도록 합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					var err error
					if e, ok := r.(error); ok {
						err = apperrors.Wrap(e, apperrors.Internal, "핸들러 실행 중 패닉이 발생했습니다")
					} else {
						err = apperrors.Newf(apperrors.Internal, "%v", r)
					}

					fields := applog.Fields{
						"error": err,
						"stack": fmt.Sprintf("%+v", err),
					}
					if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
						fields["request_id"] = requestID
					}

					applog.WithComponentAndFields(constants.ComponentMiddleware, fields).Error(constants.LogMsgPanicRecovered)

					c.Error(err)
				}
			}()

			return next(c)
		}
	}
}
