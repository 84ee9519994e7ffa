package scraper

import "strings"

const (
	ShopeeSourceName = "Shopee"
	ShopeeMarker     = "shopee.com"
)

// Source 지원하는 쇼핑몰입니다. 메시지에 Marker가 포함되어 있으면 해당 쇼핑몰의 링크로 판단합니다.
type Source struct {
	Name      string
	Marker    string
	Extractor Extractor
}

// Matches 텍스트에 Marker 문자열이 포함되어 있는지 확인합니다.
func (s Source) Matches(text string) bool {
	return s.Marker != "" && strings.Contains(text, s.Marker)
}

// Shopee 쇼피 상품 페이지를 처리하는 Source를 반환합니다.
func Shopee() Source {
	return Source{
		Name:      ShopeeSourceName,
		Marker:    ShopeeMarker,
		Extractor: ShopeeExtractor{},
	}
}
