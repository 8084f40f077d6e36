package utils

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination 分页请求参数 (limit/offset)
type Pagination struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

// PageResult 分页响应结果
type PageResult struct {
	List   interface{} `json:"list"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// Normalize 补默认值并限制上限
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
