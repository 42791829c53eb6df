package tabular

// Empty-state messages. Which one applies depends on whether any
// search or filter criteria are active.
const (
	MsgNoData    = "No data available"
	MsgNoResults = "No results found for your search criteria"
)

// EmptyMessage returns the message to display when the current page has
// no rows, distinguishing an empty collection from an empty filtered
// result. Empty when rows exist.
func (v *View[T]) EmptyMessage() string {
	if len(v.Rows()) > 0 {
		return ""
	}
	if v.HasActiveCriteria() {
		return MsgNoResults
	}
	return MsgNoData
}
