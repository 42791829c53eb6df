package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Renderer writes formatted output to a terminal.
type Renderer struct {
	out   io.Writer
	theme Theme
	color bool
}

// NewRenderer builds a Renderer. Pass color=false for plain output
// (piped output, --no-color).
func NewRenderer(out io.Writer, theme Theme, color bool) *Renderer {
	return &Renderer{out: out, theme: theme, color: color}
}

func (r *Renderer) styled(text string, color lipgloss.Color) string {
	if !r.color {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// Title writes a page heading.
func (r *Renderer) Title(title string) {
	fmt.Fprintln(r.out, r.styled(title, r.theme.TitleForeground))
}

// Table writes a tabulated list page: a header row, the page's cells,
// and a pagination footer. An empty page prints the message instead.
func (r *Renderer) Table(headers []string, rows [][]string, emptyMessage string) {
	if len(rows) == 0 {
		fmt.Fprintln(r.out, r.styled(emptyMessage, r.theme.FaintText))
		return
	}

	writer := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	headerCells := make([]string, len(headers))
	for i, header := range headers {
		headerCells[i] = r.styled(strings.ToUpper(header), r.theme.HeaderForeground)
	}
	fmt.Fprintln(writer, strings.Join(headerCells, "\t"))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == "" {
				cell = "-"
			}
			cells[i] = cell
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	writer.Flush()
}

// Footer writes the pagination line under a table.
func (r *Renderer) Footer(page, pageSize, total int) {
	if total == 0 {
		return
	}
	pages := (total + pageSize - 1) / pageSize
	line := fmt.Sprintf("Page %d of %d (%d results)", page+1, pages, total)
	fmt.Fprintln(r.out, r.styled(line, r.theme.FaintText))
}

// Detail writes an aligned label/value block.
func (r *Renderer) Detail(pairs [][2]string) {
	writer := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, pair := range pairs {
		label := r.styled(pair[0], r.theme.HeaderForeground)
		value := pair[1]
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\n", label, value)
	}
	writer.Flush()
}

// Notice writes a dimmed informational line.
func (r *Renderer) Notice(format string, args ...any) {
	fmt.Fprintln(r.out, r.styled(fmt.Sprintf(format, args...), r.theme.FaintText))
}
