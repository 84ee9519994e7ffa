package bot

import (
	"context"
	"fmt"
	"html"
	"strings"

	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"github.com/darkkaiser/posta-pra-mim/internal/service/sheet"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/darkkaiser/posta-pra-mim/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// 지원하는 봇 명령어입니다.
const (
	commandStart      = "start"
	commandHelp       = "help"
	commandCategories = "categorias"
	commandSend       = "enviar"
	commandStatus     = "status"
)

// startMarker 메시지 어디에든 포함되어 있으면 인사말을 보냅니다("/startx", "oi /start" 포함).
const startMarker = "/" + commandStart

// logTitleMaxRunes 로그에 남기는 상품명의 최대 글자 수
const logTitleMaxRunes = 60

// handleMessage 수신한 메시지 하나를 처리합니다.
//
//   - "/start"를 포함하면 인사말을 보냅니다.
//   - "/"로 시작하면 명령어로 처리하며, 상품 링크로 취급하지 않습니다.
//   - 지원하는 쇼핑몰 링크를 포함하면 상품 정보를 수집하여 기록합니다.
//
// 그 외의 메시지에는 응답하지 않습니다.
func (s *Service) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}

	logger := applog.WithComponentAndFields(component, applog.Fields{
		"trace_id": uuid.NewString(),
		"chat_id":  message.Chat.ID,
	})

	defer func() {
		if r := recover(); r != nil {
			err := apperrors.Newf(apperrors.Internal, "메시지 처리 중 패닉이 발생했습니다: %v", r)
			logger.WithError(err).Errorf("%+v", err)
		}
	}()

	text := strings.TrimSpace(message.Text)
	if text == "" {
		return
	}

	greeted := false
	if strings.Contains(text, startMarker) {
		s.send(logger.WithField("command", commandStart), message.Chat.ID, greeting(message.From))
		greeted = true
	}

	if strings.HasPrefix(text, "/") {
		if !greeted {
			s.handleCommand(logger, message, text)
		}
		return
	}

	if !s.scraper.Supports(text) {
		logger.Debug("지원하지 않는 메시지를 무시합니다")
		return
	}

	s.processLink(ctx, logger, message.Chat.ID, text)
}

func (s *Service) handleCommand(logger *applog.Entry, message *tgbotapi.Message, text string) {
	command := parseCommand(text)

	logger = logger.WithField("command", command)

	switch command {
	case commandStart, commandHelp:
		s.send(logger, message.Chat.ID, greeting(message.From))

	case commandCategories, commandSend, commandStatus:
		s.send(logger, message.Chat.ID, fmt.Sprintf(msgCommandNotAvailable, command))

	default:
		logger.Debug("알 수 없는 명령어를 무시합니다")
	}
}

// processLink 상품 정보를 가져와 스프레드시트에 기록하고 결과를 응답합니다.
func (s *Service) processLink(ctx context.Context, logger *applog.Entry, chatID int64, link string) {
	logger.Info("상품 링크 처리 시작")

	if err := s.send(logger, chatID, msgCapturing); err != nil {
		return
	}

	product, err := s.scraper.Scrape(ctx, link)
	if err != nil {
		withErrorFields(logger, err).Error("상품 정보 수집 실패")
		s.send(logger, chatID, msgCaptureFailed)
		return
	}

	logger = logger.WithField("title", strutil.Truncate(product.Title, logTitleMaxRunes))

	if err := s.appender.Append(ctx, sheet.BuildRow(product, link)); err != nil {
		withErrorFields(logger, err).Error("스프레드시트 기록 실패")
		return
	}

	s.send(logger, chatID, fmt.Sprintf(msgSaved, html.EscapeString(product.Title), product.Price))

	logger.Info("상품 링크 처리 완료")
}

// send 메시지를 HTML 모드로 전송합니다.
func (s *Service) send(logger *applog.Entry, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := s.client.Send(msg); err != nil {
		withErrorFields(logger, err).Error("텔레그램 메시지 발송 실패")
		return apperrors.Wrap(err, apperrors.Unavailable, "텔레그램 메시지 발송에 실패했습니다")
	}

	return nil
}

// withErrorFields 에러와 함께 에러 종류, 근본 원인을 로그 필드로 추가합니다.
func withErrorFields(logger *applog.Entry, err error) *applog.Entry {
	return logger.WithError(err).WithFields(applog.Fields{
		"error_type": apperrors.UnderlyingType(err).String(),
		"root_cause": apperrors.RootCause(err).Error(),
	})
}

// parseCommand "/Start@posta_bot arg" 형태의 텍스트에서 "start"를 꺼냅니다.
func parseCommand(text string) string {
	command := strings.Fields(text)[0]
	command = strings.TrimPrefix(command, "/")
	command, _, _ = strings.Cut(command, "@")

	return strings.ToLower(command)
}

func greeting(from *tgbotapi.User) string {
	if from == nil || strings.TrimSpace(from.FirstName) == "" {
		return msgGreeting + msgHelp
	}

	return fmt.Sprintf(msgGreetingWithName, html.EscapeString(from.FirstName)) + msgHelp
}
