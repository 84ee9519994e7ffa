// Package scraper 상품 링크의 페이지를 내려받아 상품 정보를 추출합니다.
package scraper

import (
	"context"

	apperrors "github.com/darkkaiser/posta-pra-mim/internal/pkg/errors"
	"github.com/darkkaiser/posta-pra-mim/internal/service/scraper/fetcher"
	applog "github.com/darkkaiser/posta-pra-mim/pkg/log"
	"github.com/darkkaiser/posta-pra-mim/pkg/strutil"
)

const component = "scraper"

// logTitleMaxRunes 로그에 남기는 상품명의 최대 글자 수
const logTitleMaxRunes = 60

// Scraper 링크에 맞는 Source를 골라 페이지를 내려받고 상품 정보를 추출합니다.
type Scraper struct {
	fetcher fetcher.Fetcher
	sources []Source
}

// New sources를 지정하지 않으면 Shopee만 지원합니다.
func New(f fetcher.Fetcher, sources ...Source) *Scraper {
	if f == nil {
		f = fetcher.New()
	}
	if len(sources) == 0 {
		sources = []Source{Shopee()}
	}

	return &Scraper{
		fetcher: f,
		sources: sources,
	}
}

// Match 텍스트를 처리할 수 있는 Source를 찾습니다.
func (s *Scraper) Match(text string) (Source, bool) {
	for _, src := range s.sources {
		if src.Matches(text) {
			return src, true
		}
	}
	return Source{}, false
}

// Supports 텍스트가 지원하는 쇼핑몰의 링크를 포함하는지 확인합니다.
func (s *Scraper) Supports(text string) bool {
	_, ok := s.Match(text)
	return ok
}

// Scrape 링크의 페이지를 내려받아 상품 정보를 추출합니다.
//
// 페이지를 내려받지 못하면 (nil, error)를 반환합니다.
// 페이지를 받았다면 일부 또는 전체 항목을 찾지 못하더라도 기본값이 채워진 Product를 반환합니다.
func (s *Scraper) Scrape(ctx context.Context, link string) (*Product, error) {
	src, ok := s.Match(link)
	if !ok {
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 쇼핑몰의 링크입니다: '%s'", link)
	}

	body, err := fetcher.FetchText(ctx, s.fetcher, link)
	if err != nil {
		return nil, err
	}

	p := src.Extractor.Extract(body)
	if p.Source == "" {
		p.Source = src.Name
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"source":         src.Name,
		"title":          strutil.Truncate(p.Title, logTitleMaxRunes),
		"price":          p.Price.String(),
		"previous_price": p.PreviousPrice.String(),
		"title_found":    p.Title != DefaultTitle,
	}).WithContext(ctx).Debug("상품 정보 추출 완료")

	return p, nil
}
