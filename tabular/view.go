// Package tabular derives what a list page shows from an in-memory
// record collection and a column configuration: free-text search,
// per-field filters, stable sorting, pagination, page-scoped selection,
// and CSV-ready export data. It performs no I/O; loading the rows is
// the caller's job.
package tabular

import "sort"

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Column describes one column of a view. Values are resolved by an
// explicit accessor rather than a field-path string, so a missing
// nested field is a compile error instead of a silent nil.
type Column[T any] struct {
	ID    string
	Label string

	// Value resolves the cell value used for display, search, filter,
	// and sort. A nil result renders empty and sorts lowest.
	Value func(T) any

	// ExportValue, when set, overrides Value for CSV export.
	ExportValue func(T) any

	Searchable bool
	Sortable   bool
	Exportable bool
}

// Options is the per-view behavior configuration.
type Options struct {
	Searchable bool
	Filterable bool
	Exportable bool
	Selectable bool

	// MinSearchLength gates the search stage: shorter queries are
	// ignored, not rejected.
	MinSearchLength int

	DefaultSortColumn    string
	DefaultSortDirection Direction

	PageSize        int
	PageSizeOptions []int
}

// View holds the ephemeral state of one mounted list page. It is not
// safe for concurrent use; all mutation happens on the caller's event
// loop.
type View[T any] struct {
	columns []Column[T]
	options Options

	// id resolves a record's identifier, used for selection tracking.
	id func(T) int64

	rows []T

	query           string
	filters         map[string]Filter
	filterAccessors map[string]func(T) any

	sortColumn string
	direction  Direction

	page     int
	pageSize int

	selection         map[int64]struct{}
	onSelectionChange func([]int64)
}

// New constructs a view over the given columns. The id accessor is
// required when selection is enabled.
func New[T any](columns []Column[T], id func(T) int64, options Options) *View[T] {
	if options.MinSearchLength <= 0 {
		options.MinSearchLength = 2
	}
	if options.PageSize <= 0 {
		options.PageSize = 10
	}
	if len(options.PageSizeOptions) == 0 {
		options.PageSizeOptions = []int{5, 10, 25, 50}
	}

	sortColumn := options.DefaultSortColumn
	if sortColumn == "" && len(columns) > 0 {
		sortColumn = columns[0].ID
	}

	return &View[T]{
		columns:         columns,
		options:         options,
		id:              id,
		filters:         make(map[string]Filter),
		filterAccessors: make(map[string]func(T) any),
		sortColumn:      sortColumn,
		direction:       options.DefaultSortDirection,
		pageSize:        options.PageSize,
		selection:       make(map[int64]struct{}),
	}
}

// Config returns the view's behavior configuration.
func (v *View[T]) Config() Options {
	return v.options
}

// SetRows replaces the backing collection. The page resets to 0; the
// rows slice is treated as read-only and never mutated.
func (v *View[T]) SetRows(rows []T) {
	v.rows = rows
	v.page = 0
}

// SetQuery sets the free-text search term and resets the page.
func (v *View[T]) SetQuery(query string) {
	v.query = query
	v.page = 0
}

// Query returns the current search term.
func (v *View[T]) Query() string {
	return v.query
}

// RegisterFilterField declares an accessor for a filter key that does
// not correspond to a column, e.g. a foreign-key field used only by a
// custom filter control.
func (v *View[T]) RegisterFilterField(key string, accessor func(T) any) {
	v.filterAccessors[key] = accessor
}

// SetFilter sets or replaces the filter for a key and resets the page.
// A zero filter value removes the entry.
func (v *View[T]) SetFilter(key string, filter Filter) {
	if filter.IsZero() {
		delete(v.filters, key)
	} else {
		v.filters[key] = filter
	}
	v.page = 0
}

// ClearFilters removes the search term and all filters, resetting the
// page.
func (v *View[T]) ClearFilters() {
	v.query = ""
	v.filters = make(map[string]Filter)
	v.page = 0
}

// HasActiveCriteria reports whether a search term or any filter is in
// effect, which determines which empty-state message applies.
func (v *View[T]) HasActiveCriteria() bool {
	return len(v.query) >= v.options.MinSearchLength || len(v.filters) > 0
}

// SortBy sets the active sort column and direction. Columns not marked
// sortable are ignored. Sorting does not reset the page.
func (v *View[T]) SortBy(columnID string, direction Direction) {
	if !v.sortable(columnID) {
		return
	}
	v.sortColumn = columnID
	v.direction = direction
}

// ToggleSort flips the direction when columnID is already the active
// sort column, otherwise sorts ascending by it, which is the
// header-click behavior. Columns not marked sortable are ignored.
func (v *View[T]) ToggleSort(columnID string) {
	if !v.sortable(columnID) {
		return
	}
	if v.sortColumn == columnID && v.direction == Ascending {
		v.direction = Descending
	} else {
		v.sortColumn = columnID
		v.direction = Ascending
	}
}

func (v *View[T]) sortable(columnID string) bool {
	for _, column := range v.columns {
		if column.ID == columnID {
			return column.Sortable
		}
	}
	return false
}

// Sort returns the active sort column and direction.
func (v *View[T]) Sort() (string, Direction) {
	return v.sortColumn, v.direction
}

// SetPage moves the pagination cursor. Negative pages clamp to 0;
// pages beyond the data yield an empty page rather than an error.
func (v *View[T]) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	v.page = page
}

// CurrentPage returns the current page index.
func (v *View[T]) CurrentPage() int {
	return v.page
}

// SetPageSize changes the page size and resets to the first page.
func (v *View[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	v.pageSize = size
	v.page = 0
}

// PageSize returns the current page size.
func (v *View[T]) PageSize() int {
	return v.pageSize
}

// Derived runs the search, filter, and sort stages, in that order,
// and returns the full derived sequence before pagination.
func (v *View[T]) Derived() []T {
	result := v.searchStage(v.rows)
	result = v.filterStage(result)
	return v.sortStage(result)
}

// Rows returns the current page of the derived sequence.
func (v *View[T]) Rows() []T {
	derived := v.Derived()

	start := v.page * v.pageSize
	if start >= len(derived) {
		return nil
	}
	end := start + v.pageSize
	if end > len(derived) {
		end = len(derived)
	}
	return derived[start:end]
}

// Total returns the number of rows after search and filtering.
func (v *View[T]) Total() int {
	return len(v.Derived())
}

// searchStage keeps rows where any searchable column's string-coerced
// value contains the query, case-insensitively. Queries shorter than
// MinSearchLength leave the input untouched.
func (v *View[T]) searchStage(rows []T) []T {
	if !v.options.Searchable || len(v.query) < v.options.MinSearchLength {
		return rows
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, column := range v.columns {
			if !column.Searchable {
				continue
			}
			if containsFold(coerceString(column.Value(row)), v.query) {
				result = append(result, row)
				break
			}
		}
	}
	return result
}

// filterStage applies every active filter. A row survives only if it
// matches all of them.
func (v *View[T]) filterStage(rows []T) []T {
	if !v.options.Filterable || len(v.filters) == 0 {
		return rows
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		if v.matchesFilters(row) {
			result = append(result, row)
		}
	}
	return result
}

func (v *View[T]) matchesFilters(row T) bool {
	for key, filter := range v.filters {
		accessor := v.filterAccessor(key)
		if accessor == nil {
			return false
		}
		if !filter.Matches(accessor(row)) {
			return false
		}
	}
	return true
}

// filterAccessor resolves a filter key: registered custom accessors
// first, then column IDs.
func (v *View[T]) filterAccessor(key string) func(T) any {
	if accessor, ok := v.filterAccessors[key]; ok {
		return accessor
	}
	for _, column := range v.columns {
		if column.ID == key {
			return column.Value
		}
	}
	return nil
}

// sortStage stable-sorts by the active sort column with a single
// comparator parameterized by direction. Ties keep their input order in
// both directions; descending is never computed by reversing an
// ascending pass.
func (v *View[T]) sortStage(rows []T) []T {
	accessor := v.columnValue(v.sortColumn)
	if accessor == nil {
		return rows
	}

	sorted := make([]T, len(rows))
	copy(sorted, rows)
	descending := v.direction == Descending
	sort.SliceStable(sorted, func(i, j int) bool {
		return compareValues(accessor(sorted[i]), accessor(sorted[j]), descending) < 0
	})
	return sorted
}

func (v *View[T]) columnValue(columnID string) func(T) any {
	for _, column := range v.columns {
		if column.ID == columnID {
			return column.Value
		}
	}
	return nil
}

// Columns returns the view's column configuration.
func (v *View[T]) Columns() []Column[T] {
	return v.columns
}
