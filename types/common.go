package types

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50
)

// PageReq 通用分页参数
type PageReq struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize 补齐缺省值并限制单页数量
func (p *PageReq) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := int64(0)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

type MessageResp struct {
	Message string `json:"message"`
}
