package views

// TableOptions carries the configured table defaults every list page
// shares: the page size picked by the caller plus the selectable page
// sizes and the search-gate length from configuration.
type TableOptions struct {
	PageSize        int
	PageSizeOptions []int
	MinSearchLength int
}
