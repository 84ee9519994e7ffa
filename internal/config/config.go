package config

import (
	"errors"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "posta-pra-mim"

	// DefaultEnvFile 실행 디렉토리에서 읽어들이는 선택적 환경 변수 파일입니다.
	DefaultEnvFile = ".env"

	DefaultListenPort       = 3000
	DefaultSheetRange       = "Página1!A:L"
	DefaultValueInputOption = "RAW"
)

// envKeys 환경 변수 이름과 설정 키의 대응 관계입니다. 목록에 없는 환경 변수는 무시됩니다.
var envKeys = map[string]string{
	"TELEGRAM_TOKEN":       "telegram.bot_token",
	"SHEET_ID":             "sheet.spreadsheet_id",
	"GOOGLE_SERVICE_EMAIL": "sheet.service_account_email",
	"GOOGLE_PRIVATE_KEY":   "sheet.private_key",
	"DEBUG":                "debug",
}

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug    bool           `json:"debug"`
	Telegram TelegramConfig `json:"telegram"`
	Sheet    SheetConfig    `json:"sheet"`
	HTTP     HTTPConfig     `json:"http"`
}

// TelegramConfig 텔레그램 봇 설정
type TelegramConfig struct {
	BotToken string `json:"bot_token" validate:"required"`
}

// SheetConfig 상품 정보를 기록할 구글 스프레드시트와 서비스 계정 설정
type SheetConfig struct {
	SpreadsheetID       string `json:"spreadsheet_id" validate:"required"`
	ServiceAccountEmail string `json:"service_account_email" validate:"required"`
	PrivateKey          string `json:"private_key" validate:"required"`
	Range               string `json:"range" validate:"required"`
	ValueInputOption    string `json:"value_input_option" validate:"oneof=RAW USER_ENTERED"`
}

// HTTPConfig 상태 확인용 웹 서버 설정
type HTTPConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`
}

// validate 필수 값과 범위를 검증합니다.
// 서비스 계정 개인키 누락을 가장 먼저 보고합니다.
func (c *AppConfig) validate() error {
	v := newValidator()

	if err := checkStruct(v, &c.Sheet, "스프레드시트", "PrivateKey"); err != nil {
		return err
	}
	if err := checkStruct(v, &c.Telegram, "텔레그램"); err != nil {
		return err
	}
	if err := checkStruct(v, &c.Sheet, "스프레드시트"); err != nil {
		return err
	}
	if err := checkStruct(v, &c.HTTP, "웹 서버"); err != nil {
		return err
	}

	return nil
}

// Load 실행 디렉토리의 .env 파일과 환경 변수에서 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithEnvFile(DefaultEnvFile)
}

// LoadWithEnvFile 지정된 .env 파일과 환경 변수에서 설정을 로드합니다.
//
// 우선순위: 기본값 < .env 파일 < 프로세스 환경 변수
// .env 파일은 이미 설정된 환경 변수를 덮어쓰지 않으며, 파일이 없어도 에러가 아닙니다.
func LoadWithEnvFile(filename string) (*AppConfig, error) {
	if filename != "" {
		if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrapf(err, apperrors.System, "환경 변수 파일을 읽을 수 없습니다: '%s'", filename)
		}
	}

	k := koanf.New(".")

	// 1. 기본값 로드
	if err := k.Load(confmap.Provider(map[string]any{
		"http.listen_port":         DefaultListenPort,
		"sheet.range":              DefaultSheetRange,
		"sheet.value_input_option": DefaultValueInputOption,
	}, "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. 환경 변수 로드
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 3. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 값을 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	appConfig.normalize()

	// 4. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, err
	}

	return &appConfig, nil
}

// normalize 환경 변수로 전달되면서 이스케이프된 값을 복원합니다.
// 한 줄로 저장된 개인키의 "\n" 문자열은 실제 줄바꿈으로 바꿉니다.
func (c *AppConfig) normalize() {
	c.Sheet.PrivateKey = strings.ReplaceAll(c.Sheet.PrivateKey, `\n`, "\n")
	c.Telegram.BotToken = strings.TrimSpace(c.Telegram.BotToken)
	c.Sheet.SpreadsheetID = strings.TrimSpace(c.Sheet.SpreadsheetID)
	c.Sheet.ServiceAccountEmail = strings.TrimSpace(c.Sheet.ServiceAccountEmail)
}
