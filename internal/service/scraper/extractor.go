package scraper

import (
	"regexp"
	"strconv"
)

// priceDivisor 페이지에 기록된 정수 가격을 헤알 단위로 바꾸기 위한 제수입니다.
const priceDivisor = 100000

// Extractor 상품 페이지 본문에서 상품 정보를 추출합니다.
//
// Extract는 실패하지 않습니다. 찾지 못한 항목은 기본값으로 채워집니다.
type Extractor interface {
	Extract(body string) *Product
}

// ShopeeExtractor 페이지에 포함된 JSON 조각을 HTML/JSON 파싱 없이 패턴으로 찾아냅니다.
type ShopeeExtractor struct{}

var _ Extractor = ShopeeExtractor{}

var (
	shopeeTitlePattern         = regexp.MustCompile(`"name":"([^"]+)"`)
	shopeeImagePattern         = regexp.MustCompile(`"image":"([^"]+)"`)
	shopeePricePattern         = regexp.MustCompile(`"price":(\d+)`)
	shopeePreviousPricePattern = regexp.MustCompile(`"price_before_discount":(\d+)`)
)

func (ShopeeExtractor) Extract(body string) *Product {
	p := &Product{
		Source:   ShopeeSourceName,
		Title:    DefaultTitle,
		ImageURL: "",
	}

	if v, ok := firstGroup(shopeeTitlePattern, body); ok {
		p.Title = v
	}
	if v, ok := firstGroup(shopeeImagePattern, body); ok {
		p.ImageURL = v
	}

	// 가격이 없거나 0이면 0, 할인 전 가격이 없거나 0이면 가격과 같은 값을 사용한다.
	price, _ := matchPrice(shopeePricePattern, body)
	previousPrice, ok := matchPrice(shopeePreviousPricePattern, body)
	if !ok {
		previousPrice = price
	}

	p.Price = BRL(price)
	p.PreviousPrice = BRL(previousPrice)

	return p
}

func firstGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// matchPrice 패턴에 일치한 정수를 priceDivisor로 나눈 값을 반환합니다.
// 일치하지 않거나, float64로 표현할 수 없거나, 결과가 0이면 false를 반환합니다.
func matchPrice(re *regexp.Regexp, s string) (float64, bool) {
	digits, ok := firstGroup(re, s)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}

	v := n / priceDivisor
	if v == 0 {
		return 0, false
	}

	return v, true
}
