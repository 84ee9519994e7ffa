package bot

import (
	"context"
	"fmt"
	"testing"

	"github.com/darkkaiser/posta-pra-mim/internal/service/sheet"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"
)

var _ client = (*MockTelegramBot)(nil)

// MockTelegramBot 텔레그램 봇 API(client)의 Mock 구현체입니다.
type MockTelegramBot struct {
	mock.Mock
}

func NewMockTelegramBot(t *testing.T) *MockTelegramBot {
	m := &MockTelegramBot{}
	m.Test(t)
	return m
}

// GetUpdatesChan 업데이트 수신 채널을 반환합니다.
//
//	updates := make(chan tgbotapi.Update, 10)
//	mockBot.On("GetUpdatesChan", mock.Anything).Return(updates)
func (m *MockTelegramBot) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	args := m.Called(config)
	return getUpdatesChannel(args.Get(0))
}

func (m *MockTelegramBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)

	var msg tgbotapi.Message
	if args.Get(0) != nil {
		msg = args.Get(0).(tgbotapi.Message)
	}

	return msg, args.Error(1)
}

func (m *MockTelegramBot) StopReceivingUpdates() {
	m.Called()
}

func (m *MockTelegramBot) GetSelf() tgbotapi.User {
	args := m.Called()

	if args.Get(0) != nil {
		return args.Get(0).(tgbotapi.User)
	}
	return tgbotapi.User{}
}

// getUpdatesChannel `chan tgbotapi.Update`는 `<-chan` 타입 어설션을 통과하지 못하므로 따로 꺼냅니다.
func getUpdatesChannel(ret any) tgbotapi.UpdatesChannel {
	if ret == nil {
		return nil
	}

	if ch, ok := ret.(tgbotapi.UpdatesChannel); ok {
		return ch
	}
	if ch, ok := ret.(chan tgbotapi.Update); ok {
		return ch
	}

	panic(fmt.Sprintf("MockTelegramBot.GetUpdatesChan: unexpected return type: %T", ret))
}

var _ sheet.Appender = (*MockAppender)(nil)

// MockAppender sheet.Appender의 Mock 구현체입니다.
type MockAppender struct {
	mock.Mock
}

func NewMockAppender(t *testing.T) *MockAppender {
	m := &MockAppender{}
	m.Test(t)
	return m
}

func (m *MockAppender) Append(ctx context.Context, row sheet.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

// messageWithText 전송 메시지의 본문이 text와 같은지 검사하는 Matcher를 반환합니다.
func messageWithText(text string) any {
	return mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok && msg.Text == text
	})
}
