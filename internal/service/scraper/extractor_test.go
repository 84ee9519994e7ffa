package scraper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fullBody = `<script>{"item":{"name":"Caneca Azul","image":"http://x/img.png","price":150000,"price_before_discount":200000}}</script>`

func TestShopeeExtractor_Extract(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantTitle     string
		wantImage     string
		wantPrice     string
		wantPrevPrice string
	}{
		{
			name:          "모든 항목 추출",
			body:          fullBody,
			wantTitle:     "Caneca Azul",
			wantImage:     "http://x/img.png",
			wantPrice:     "R$ 1.50",
			wantPrevPrice: "R$ 2.00",
		},
		{
			name:          "상품명 없음",
			body:          `"image":"http://x/img.png","price":150000,"price_before_discount":200000`,
			wantTitle:     DefaultTitle,
			wantImage:     "http://x/img.png",
			wantPrice:     "R$ 1.50",
			wantPrevPrice: "R$ 2.00",
		},
		{
			name:          "가격 정보 없음",
			body:          `"name":"Caneca Azul","image":"http://x/img.png"`,
			wantTitle:     "Caneca Azul",
			wantImage:     "http://x/img.png",
			wantPrice:     "R$ 0.00",
			wantPrevPrice: "R$ 0.00",
		},
		{
			name:          "할인 전 가격만 없음",
			body:          `"name":"Caneca Azul","price":123456789`,
			wantTitle:     "Caneca Azul",
			wantImage:     "",
			wantPrice:     "R$ 1234.57",
			wantPrevPrice: "R$ 1234.57",
		},
		{
			name:          "가격만 없음",
			body:          `"price_before_discount":200000`,
			wantTitle:     DefaultTitle,
			wantPrice:     "R$ 0.00",
			wantPrevPrice: "R$ 2.00",
		},
		{
			name:          "할인 전 가격이 0이면 가격으로 대체",
			body:          `"price":150000,"price_before_discount":0`,
			wantTitle:     DefaultTitle,
			wantPrice:     "R$ 1.50",
			wantPrevPrice: "R$ 1.50",
		},
		{
			name:          "할인 전 가격이 가격보다 작아도 그대로 사용",
			body:          `"price":300000,"price_before_discount":100000`,
			wantTitle:     DefaultTitle,
			wantPrice:     "R$ 3.00",
			wantPrevPrice: "R$ 1.00",
		},
		{
			name:          "첫 번째 일치 항목 사용",
			body:          `"name":"Primeiro","name":"Segundo","price":100000,"price":900000`,
			wantTitle:     "Primeiro",
			wantPrice:     "R$ 1.00",
			wantPrevPrice: "R$ 1.00",
		},
		{
			name:          "빈 본문",
			body:          "",
			wantTitle:     DefaultTitle,
			wantPrice:     "R$ 0.00",
			wantPrevPrice: "R$ 0.00",
		},
		{
			name:          "따옴표 없는 가격 형식은 무시",
			body:          `"price":"150000"`,
			wantTitle:     DefaultTitle,
			wantPrice:     "R$ 0.00",
			wantPrevPrice: "R$ 0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ShopeeExtractor{}.Extract(tt.body)

			assert.Equal(t, ShopeeSourceName, p.Source)
			assert.Equal(t, tt.wantTitle, p.Title)
			assert.Equal(t, tt.wantImage, p.ImageURL)
			assert.Equal(t, tt.wantPrice, p.Price.String())
			assert.Equal(t, tt.wantPrevPrice, p.PreviousPrice.String())
		})
	}
}

// 네 항목이 모두 있으면 가격은 항상 정수 / 100000 을 두 자리로 표시한 값입니다.
func TestShopeeExtractor_PriceDivision(t *testing.T) {
	prices := []int64{0, 1, 99999, 100000, 150000, 1999000, 4990000000, 123456789012}

	for _, price := range prices {
		for _, prev := range []int64{1, 250000, 987654321} {
			t.Run(fmt.Sprintf("%d_%d", price, prev), func(t *testing.T) {
				body := fmt.Sprintf(`"name":"X","image":"Y","price":%d,"price_before_discount":%d`, price, prev)

				p := ShopeeExtractor{}.Extract(body)

				assert.Equal(t, FormatBRL(float64(price)/100000), p.Price.String())
				assert.Equal(t, FormatBRL(float64(prev)/100000), p.PreviousPrice.String())
			})
		}
	}
}

// 상품명이 없을 때의 기본값은 다른 항목의 유무와 무관합니다.
func TestShopeeExtractor_DefaultTitleIndependent(t *testing.T) {
	bodies := []string{
		``,
		`"image":"http://x/img.png"`,
		`"price":150000`,
		`"price_before_discount":200000`,
		`"image":"a","price":1,"price_before_discount":2`,
		`"Name":"대소문자 다름"`,
		`"name":""`,
	}

	for _, body := range bodies {
		assert.Equal(t, DefaultTitle, ShopeeExtractor{}.Extract(body).Title, body)
	}
}

func TestMatchPrice_Overflow(t *testing.T) {
	huge := `"price":1` + fmt.Sprintf("%0400d", 0)

	_, ok := matchPrice(shopeePricePattern, huge)

	assert.False(t, ok, "float64 범위를 넘는 값은 일치하지 않은 것으로 취급합니다")
	assert.Equal(t, "R$ 0.00", ShopeeExtractor{}.Extract(huge).Price.String())
}
