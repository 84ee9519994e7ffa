package bot

import (
	"context"
	"time"

	"github.com/darkkaiser/posta-pra-mim/internal/service/scraper"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// component 텔레그램 봇 서비스 로깅용 컴포넌트 이름
const component = "bot"

const (
	// pollingTimeout Long Polling 요청 한 번이 응답을 기다리는 최대 시간(초)입니다.
	pollingTimeout = 60

	// telegramHTTPClientTimeout 텔레그램 API 호출에 사용하는 HTTP 클라이언트의 타임아웃입니다.
	// Long Polling 대기 시간보다 길어야 합니다.
	telegramHTTPClientTimeout = (pollingTimeout + 15) * time.Second

	// shutdownTimeout 종료 시 처리 중인 메시지가 끝나기를 기다리는 최대 시간입니다.
	shutdownTimeout = 30 * time.Second
)

// client 텔레그램 봇 API와의 통신을 추상화한 인터페이스입니다.
type client interface {
	GetSelf() tgbotapi.User

	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)

	StopReceivingUpdates()
}

// tgClient tgbotapi.BotAPI를 client 인터페이스에 맞춥니다.
type tgClient struct {
	*tgbotapi.BotAPI
}

func (c *tgClient) GetSelf() tgbotapi.User {
	return c.Self
}

// productScraper 메시지의 링크에서 상품 정보를 가져옵니다.
type productScraper interface {
	Supports(text string) bool
	Scrape(ctx context.Context, link string) (*scraper.Product, error)
}

var _ productScraper = (*scraper.Scraper)(nil)
