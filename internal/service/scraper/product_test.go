package scraper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"0", 0, "R$ 0.00"},
		{"정수", 2, "R$ 2.00"},
		{"소수 한 자리", 1.5, "R$ 1.50"},
		{"정확한 중간값은 올림", 0.125, "R$ 0.13"},
		{"이진 표현이 중간값보다 작으면 내림", 1.005, "R$ 1.00"},
		{"이진 표현이 중간값보다 크면 올림", 8.345, "R$ 8.35"},
		{"큰 금액", 1234567.891, "R$ 1234567.89"},
		{"작은 금액", 0.00001, "R$ 0.00"},
		{"음수", -1.5, "R$ -1.50"},
		{"NaN", math.NaN(), "R$ 0.00"},
		{"Inf", math.Inf(1), "R$ 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.in))
		})
	}
}

func TestBRL_String(t *testing.T) {
	assert.Equal(t, "R$ 1.50", BRL(150000.0/priceDivisor).String())
}
