package config

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// fieldEnvNames 필수 값 누락 시 안내할 환경 변수 이름입니다.
var fieldEnvNames = map[string]string{
	"BotToken":            "TELEGRAM_TOKEN",
	"SpreadsheetID":       "SHEET_ID",
	"ServiceAccountEmail": "GOOGLE_SERVICE_EMAIL",
	"PrivateKey":          "GOOGLE_PRIVATE_KEY",
}

// newValidator 에러 메시지에 구조체 필드명 대신 JSON 이름을 사용하는 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 사항을 사용자 친화적인 에러로 변환합니다.
// fields를 지정하면 해당 필드만 검사합니다.
func checkStruct(v *validator.Validate, s any, contextName string, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.StructPartial(s, fields...)
	} else {
		err = v.Struct(s)
	}
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]

	if firstErr.Tag() == "required" {
		if envName, ok := fieldEnvNames[firstErr.StructField()]; ok {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("필수 환경 변수(%s)가 설정되지 않았습니다", envName))
		}
	}

	switch firstErr.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다: '%v'", firstErr.Value()))
	case "ValueInputOption":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("스프레드시트 입력 방식(value_input_option)은 RAW 또는 USER_ENTERED 이어야 합니다: '%v'", firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}
