package sheet

import "github.com/darkkaiser/posta-pra-mim/internal/service/scraper"

// RowSize 스프레드시트 한 행의 열 개수 (A:L)
const RowSize = 12

// 모든 행에 동일하게 기록되는 값입니다.
const (
	DefaultCategory = "Geral"
	HookPlaceholder = "Curiosidade ou benefício"
	CallToAction    = "Aproveite agora!"
	StatusPending   = "Pendente"
	FlagYes         = "Sim"
)

// Row 스프레드시트에 추가되는 한 행입니다. 열 이름 없이 위치로만 구분합니다.
//
//	A 상품명 | B 링크 | C 쇼핑몰 | D 카테고리 | E 이미지 | F 할인 전 가격 | G 가격
//	H 문구 | I 행동 유도 문구 | J (빈칸) | K 상태 | L 플래그
type Row [RowSize]string

// BuildRow 추출한 상품 정보와 원본 링크로 행을 만듭니다.
func BuildRow(p *scraper.Product, link string) Row {
	return Row{
		p.Title,
		link,
		p.Source,
		DefaultCategory,
		p.ImageURL,
		p.PreviousPrice.String(),
		p.Price.String(),
		HookPlaceholder,
		CallToAction,
		"",
		StatusPending,
		FlagYes,
	}
}

// Values Sheets API 요청 본문에 사용할 수 있는 형태로 변환합니다.
func (r Row) Values() []any {
	values := make([]any, len(r))
	for i, v := range r {
		values[i] = v
	}
	return values
}
