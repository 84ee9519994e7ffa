package scraper

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultTitle 상품명을 찾지 못했을 때 사용하는 기본값입니다.
const DefaultTitle = "Produto não identificado"

// Product 상품 페이지에서 추출한 정보입니다.
// 링크 하나를 처리할 때마다 새로 만들어지고, 스프레드시트 행을 만든 뒤 버려집니다.
type Product struct {
	Source        string
	Title         string
	ImageURL      string
	Price         BRL
	PreviousPrice BRL // 할인 전 가격, Price보다 작을 수도 있음
}

// BRL 헤알화 금액입니다.
type BRL float64

// String "R$ " 뒤에 소수점 둘째 자리까지의 금액을 붙입니다. (예: "R$ 1.50")
func (v BRL) String() string {
	return FormatBRL(float64(v))
}

// FormatBRL 금액을 "R$ 0.00" 형식으로 변환합니다.
//
// 반올림은 float64 값이 실제로 표현하는 이진수 값을 기준으로 하며, 정확히 중간이면 올림합니다.
// 예: 0.125 → "R$ 0.13", 1.005(실제 값 1.00499...) → "R$ 1.00"
func FormatBRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "R$ 0.00"
	}

	neg := v < 0
	if neg {
		v = -v
	}

	exact := new(big.Float).SetPrec(256).SetFloat64(v)
	exact.Mul(exact, big.NewFloat(100))
	exact.Add(exact, big.NewFloat(0.5))

	cents, _ := exact.Int(nil) // 양수이므로 버림 == floor

	units, frac := new(big.Int).QuoRem(cents, big.NewInt(100), new(big.Int))

	sign := ""
	if neg && cents.Sign() != 0 {
		sign = "-"
	}

	return fmt.Sprintf("R$ %s%s.%02d", sign, units.String(), frac.Int64())
}
