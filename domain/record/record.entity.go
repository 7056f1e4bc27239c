package record

// Record is a row of a collection's physical table. Its shape is
// whatever columns that table has; the engine never fixes a schema
// beyond id, created_at and updated_at.
type Record map[string]any

type RecordPage struct {
	Data  []Record `json:"data"`
	Total int64    `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
	Pages int      `json:"pages"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)
