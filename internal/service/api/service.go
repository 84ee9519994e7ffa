// Package api 봇의 실행 상태를 알리는 HTTP 서버를 제공합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/posta-pra-mim/internal/config"
	"github.com/darkkaiser/posta-pra-mim/internal/service"
	"github.com/darkkaiser/posta-pra-mim/internal/service/api/constants"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 상태 확인용 HTTP 서버의 생명주기를 관리합니다.
//
// Start()로 시작하면 서버는 고루틴에서 실행되며, serviceStopCtx가 취소되면
// DefaultShutdownTimeout 안에서 Graceful Shutdown 합니다.
// 포트 바인딩 실패 등으로 서버가 먼저 종료되면 onUnexpectedExit를 호출합니다.
type Service struct {
	appConfig *config.AppConfig

	onUnexpectedExit func()

	shutdownTimeout time.Duration

	// listenAddr 실제로 바인딩된 주소입니다. 서버가 리슨을 시작하면 채워집니다.
	listenAddr   string
	listenAddrMu sync.RWMutex

	running   bool
	runningMu sync.Mutex
}

var _ service.Service = (*Service)(nil)

// NewService Service 인스턴스를 생성합니다. onUnexpectedExit는 nil이어도 됩니다.
func NewService(appConfig *config.AppConfig, onUnexpectedExit func()) *Service {
	if appConfig == nil {
		panic("api: AppConfig는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,

		onUnexpectedExit: onUnexpectedExit,

		shutdownTimeout: constants.DefaultShutdownTimeout,
	}
}

// Start API 서비스를 시작합니다. 서버는 고루틴에서 실행되며 이 함수는 즉시 반환됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

func (s *Service) setupServer() *echo.Echo {
	e := NewHTTPServer(HTTPServerConfig{
		Debug: s.appConfig.Debug,
	})

	RegisterRoutes(e)

	return e
}

// startHTTPServer 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.HTTP.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	go s.recordListenAddr(e, done)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// recordListenAddr 리스너가 준비되면 바인딩된 주소를 기록하고 안내 로그를 남깁니다.
func (s *Service) recordListenAddr(e *echo.Echo, done <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if addr := e.ListenerAddr(); addr != nil {
				s.listenAddrMu.Lock()
				s.listenAddr = addr.String()
				s.listenAddrMu.Unlock()

				applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
					"addr": addr.String(),
				}).Infof("🌐 Servidor rodando na porta %d", s.appConfig.HTTP.ListenPort)
				return
			}
		}
	}
}

// ListenAddr 서버가 바인딩된 주소를 반환합니다. 아직 리슨 전이면 빈 문자열입니다.
func (s *Service) ListenAddr() string {
	s.listenAddrMu.RLock()
	defer s.listenAddrMu.RUnlock()

	return s.listenAddr
}

func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 이미 종료되었다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		if s.onUnexpectedExit != nil {
			s.onUnexpectedExit()
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	s.listenAddrMu.Lock()
	s.listenAddr = ""
	s.listenAddrMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
