// Package table renders rectangular datasets page by page, the way the admin
// screens consume them: a column descriptor list, row maps, and local
// pagination state. Sorting and filtering stay with the caller.
package table

// Row is one record keyed by column key.
type Row map[string]interface{}

// Column describes one rendered column. Render, when set, receives the raw
// cell value and the whole row and returns the display string.
type Column struct {
	Key    string
	Label  string
	Render func(value interface{}, row Row) string
}

// Placeholder is shown for nil cells without a Render function.
const Placeholder = "-"

const DefaultPageSize = 10

// DefaultPageSizes are the selectable page sizes.
var DefaultPageSizes = []int{5, 10, 25}

// Table holds column config plus local pagination state.
type Table struct {
	Columns      []Column
	EmptyMessage string

	page     int
	pageSize int
}

// Result is one rendered page.
type Result struct {
	Loading      bool
	EmptyMessage string     // set only when there is nothing to show
	Header       []string   // column labels
	Rows         [][]string // rendered cells for the current page
	Page         int
	PageSize     int
	Total        int // total rows across all pages
}

// New builds a table with the default page size.
func New(columns []Column, emptyMessage string) *Table {
	if emptyMessage == "" {
		emptyMessage = "No records found"
	}
	return &Table{
		Columns:      columns,
		EmptyMessage: emptyMessage,
		pageSize:     DefaultPageSize,
	}
}

func (t *Table) Page() int     { return t.page }
func (t *Table) PageSize() int { return t.pageSize }

// SetPage moves to the given zero-based page. Negative pages clamp to 0.
func (t *Table) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	t.page = page
}

// SetPageSize changes the page size and resets to the first page.
func (t *Table) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	t.pageSize = size
	t.page = 0
}

// Render produces the current page. While loading nothing else is rendered;
// an empty dataset (post-loading) yields only the empty message.
func (t *Table) Render(data []Row, loading bool) Result {
	if loading {
		return Result{Loading: true, Page: t.page, PageSize: t.pageSize}
	}
	if data == nil {
		data = []Row{}
	}

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Label
	}

	if len(data) == 0 {
		return Result{
			EmptyMessage: t.EmptyMessage,
			Header:       header,
			Rows:         [][]string{},
			Page:         t.page,
			PageSize:     t.pageSize,
		}
	}

	start := t.page * t.pageSize
	end := start + t.pageSize
	if start > len(data) {
		start = len(data)
	}
	if end > len(data) {
		end = len(data)
	}

	rows := make([][]string, 0, end-start)
	for _, row := range data[start:end] {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = renderCell(col, row)
		}
		rows = append(rows, cells)
	}

	return Result{
		Header:   header,
		Rows:     rows,
		Page:     t.page,
		PageSize: t.pageSize,
		Total:    len(data),
	}
}

func renderCell(col Column, row Row) string {
	value := row[col.Key]
	if col.Render != nil {
		return col.Render(value, row)
	}
	if value == nil {
		return Placeholder
	}
	if s, ok := value.(string); ok {
		return s
	}
	return toString(value)
}
