// Package bot 텔레그램으로 받은 상품 링크를 스프레드시트에 기록하는 봇 서비스입니다.
package bot

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/posta-pra-mim/internal/config"
	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"github.com/darkkaiser/posta-pra-mim/internal/service"
	"github.com/darkkaiser/posta-pra-mim/internal/service/sheet"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/darkkaiser/posta-pra-mim/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Service 텔레그램 Long Polling으로 메시지를 수신하고, 메시지마다 별도의 고루틴에서 처리합니다.
//
// 동시에 처리하는 메시지 수에 제한을 두지 않으며, 채팅방을 가리지 않습니다.
// 종료 신호를 받아도 처리 중인 메시지는 취소하지 않고 shutdownTimeout 동안 완료를 기다립니다.
type Service struct {
	client client

	scraper  productScraper
	appender sheet.Appender

	shutdownTimeout time.Duration

	running   bool
	runningMu sync.Mutex
}

var _ service.Service = (*Service)(nil)

// New 봇 토큰으로 텔레그램 API 클라이언트를 생성합니다.
// 토큰 확인(getMe)에 실패하면 에러를 반환합니다.
func New(cfg config.TelegramConfig, scraper productScraper, appender sheet.Appender) (*Service, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(cfg.BotToken),
	}).Debug("텔레그램 봇 API 클라이언트 초기화")

	// 라이브러리 내부 로그(Long Polling 재시도 등)도 애플리케이션 로그로 남긴다.
	if err := tgbotapi.SetLogger(applog.WithComponent(component + ".tgbotapi")); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "텔레그램 라이브러리 로거 설정에 실패했습니다")
	}

	botAPI, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, &http.Client{
		Timeout: telegramHTTPClientTimeout,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. TELEGRAM_TOKEN이 올바른지 확인해주세요")
	}

	return newWithClient(&tgClient{BotAPI: botAPI}, scraper, appender), nil
}

func newWithClient(c client, scraper productScraper, appender sheet.Appender) *Service {
	if scraper == nil {
		panic("bot: scraper는 필수입니다")
	}
	if appender == nil {
		panic("bot: appender는 필수입니다")
	}

	return &Service{
		client: c,

		scraper:  scraper,
		appender: appender,

		shutdownTimeout: shutdownTimeout,
	}
}

// Start Long Polling을 시작하고 즉시 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("텔레그램 봇 서비스 시작중...")

	if s.client == nil {
		defer serviceStopWG.Done()
		return apperrors.New(apperrors.Internal, "텔레그램 클라이언트가 초기화되지 않았습니다")
	}

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("텔레그램 봇 서비스가 이미 시작됨")
		return nil
	}

	s.running = true

	go s.run(serviceStopCtx, serviceStopWG)

	return nil
}

func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollingTimeout

	updateC := s.client.GetUpdatesChan(updateConfig)

	applog.WithComponentAndFields(component, applog.Fields{
		"bot_username": s.client.GetSelf().UserName,
	}).Info("텔레그램 봇 서비스 시작됨: Long Polling 활성화")

	var handlersWG sync.WaitGroup
	defer s.cleanup(&handlersWG)

	s.receive(serviceStopCtx, updateC, &handlersWG)
}

// receive 업데이트를 수신하여 메시지마다 처리 고루틴을 실행합니다.
// serviceStopCtx가 취소되거나 업데이트 채널이 닫히면 반환합니다.
func (s *Service) receive(serviceStopCtx context.Context, updateC tgbotapi.UpdatesChannel, handlersWG *sync.WaitGroup) {
	// 종료 신호가 처리 중인 메시지까지 중단시키지 않도록 취소를 분리한다.
	handlerCtx := context.WithoutCancel(serviceStopCtx)

	for {
		select {
		case update, ok := <-updateC:
			if !ok {
				applog.WithComponent(component).Warn("Long Polling 채널이 닫혀 메시지 수신을 종료합니다")
				return
			}

			if update.Message == nil {
				continue
			}

			handlersWG.Add(1)
			go func(message *tgbotapi.Message) {
				defer handlersWG.Done()
				s.handleMessage(handlerCtx, message)
			}(update.Message)

		case <-serviceStopCtx.Done():
			return
		}
	}
}

// cleanup 신규 수신을 중단하고, 처리 중인 메시지를 기다린 뒤 실행 상태를 해제합니다.
func (s *Service) cleanup(handlersWG *sync.WaitGroup) {
	applog.WithComponent(component).Info("텔레그램 봇 서비스 중지중...")

	s.client.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		handlersWG.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.shutdownTimeout):
		applog.WithComponentAndFields(component, applog.Fields{
			"timeout": s.shutdownTimeout.String(),
		}).Error("처리 중인 메시지가 제한 시간 내에 완료되지 않았습니다")
	}

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(component).Info("텔레그램 봇 서비스 중지됨")
}
