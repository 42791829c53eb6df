package tabular

// ExportData derives the CSV-ready form of the view: one header cell
// per exportable column, and one row per record of the full
// filtered and sorted set, not just the current page. Columns marked
// non-exportable are omitted from both header and body. Each cell is
// the column's ExportValue if provided, else its display value,
// string-coerced.
func (v *View[T]) ExportData() (headers []string, rows [][]string) {
	exportable := make([]Column[T], 0, len(v.columns))
	for _, column := range v.columns {
		if column.Exportable {
			exportable = append(exportable, column)
			headers = append(headers, column.Label)
		}
	}

	derived := v.Derived()
	rows = make([][]string, 0, len(derived))
	for _, record := range derived {
		row := make([]string, 0, len(exportable))
		for _, column := range exportable {
			resolve := column.Value
			if column.ExportValue != nil {
				resolve = column.ExportValue
			}
			row = append(row, coerceString(resolve(record)))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// PageData is the display form of the current page: every column's
// label, and the string-coerced display value of each cell.
func (v *View[T]) PageData() (headers []string, rows [][]string) {
	headers = make([]string, 0, len(v.columns))
	for _, column := range v.columns {
		headers = append(headers, column.Label)
	}

	page := v.Rows()
	rows = make([][]string, 0, len(page))
	for _, record := range page {
		row := make([]string, 0, len(v.columns))
		for _, column := range v.columns {
			row = append(row, coerceString(column.Value(record)))
		}
		rows = append(rows, row)
	}
	return headers, rows
}
