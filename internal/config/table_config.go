package config

type TableConfig interface {
	GetDefaultPageSize() int
	GetPageSizeOptions() []int
	GetMinSearchLength() int
}

type Table struct {
	file *fileConfig
}

var _ TableConfig = Table{}

func (t Table) GetDefaultPageSize() int {
	if t.file != nil && t.file.PageSize > 0 {
		return t.file.PageSize
	}
	return 10
}

func (Table) GetPageSizeOptions() []int {
	return []int{5, 10, 25, 50}
}

// GetMinSearchLength is the minimum query length before free-text search
// applies. Shorter queries are ignored, not rejected.
func (Table) GetMinSearchLength() int {
	return 2
}
