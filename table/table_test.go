package table

import (
	"fmt"
	"strings"
	"testing"
)

func sampleColumns() []Column {
	return []Column{
		{Key: "name", Label: "Name"},
		{Key: "role", Label: "Role"},
	}
}

func sampleRows(n int) []Row {
	rows := make([]Row, n)
	for i := 0; i < n; i++ {
		rows[i] = Row{"name": fmt.Sprintf("user%d", i), "role": "EMPLOYEE"}
	}
	return rows
}

func TestRenderLoading(t *testing.T) {
	tbl := New(sampleColumns(), "")
	result := tbl.Render(sampleRows(5), true)
	if !result.Loading {
		t.Error("Expected loading result")
	}
	if len(result.Rows) != 0 {
		t.Errorf("Expected no rows while loading, got %d", len(result.Rows))
	}
}

func TestRenderEmpty(t *testing.T) {
	tbl := New(sampleColumns(), "No employees found")
	result := tbl.Render([]Row{}, false)
	if result.EmptyMessage != "No employees found" {
		t.Errorf("Expected empty message, got %q", result.EmptyMessage)
	}
	if len(result.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(result.Rows))
	}

	// nil data is coerced to empty, not a panic
	result = tbl.Render(nil, false)
	if result.EmptyMessage == "" {
		t.Error("Expected empty message for nil data")
	}
}

func TestRenderPagination(t *testing.T) {
	tbl := New(sampleColumns(), "")
	data := sampleRows(25)

	result := tbl.Render(data, false)
	if len(result.Rows) != 10 {
		t.Errorf("Expected 10 rows on page 0, got %d", len(result.Rows))
	}
	if result.Rows[0][0] != "user0" || result.Rows[9][0] != "user9" {
		t.Errorf("Expected rows 0-9 on page 0, got %s..%s", result.Rows[0][0], result.Rows[9][0])
	}

	tbl.SetPage(1)
	result = tbl.Render(data, false)
	if result.Rows[0][0] != "user10" || result.Rows[9][0] != "user19" {
		t.Errorf("Expected rows 10-19 on page 1, got %s..%s", result.Rows[0][0], result.Rows[9][0])
	}

	tbl.SetPage(2)
	result = tbl.Render(data, false)
	if len(result.Rows) != 5 {
		t.Errorf("Expected 5 rows on the last page, got %d", len(result.Rows))
	}
	if result.Total != 25 {
		t.Errorf("Expected total 25, got %d", result.Total)
	}
}

func TestSetPageSizeResetsPage(t *testing.T) {
	tbl := New(sampleColumns(), "")
	tbl.SetPage(2)
	tbl.SetPageSize(25)
	if tbl.Page() != 0 {
		t.Errorf("Expected page reset to 0 after page size change, got %d", tbl.Page())
	}
	if tbl.PageSize() != 25 {
		t.Errorf("Expected page size 25, got %d", tbl.PageSize())
	}
}

func TestRenderCellFallbacks(t *testing.T) {
	columns := []Column{
		{Key: "name", Label: "Name"},
		{Key: "manager", Label: "Manager"},
		{Key: "status", Label: "Status", Render: func(value interface{}, row Row) string {
			return strings.ToUpper(fmt.Sprintf("%v", value))
		}},
	}
	tbl := New(columns, "")
	data := []Row{{"name": "user0", "status": "active"}} // manager absent

	result := tbl.Render(data, false)
	if result.Rows[0][1] != Placeholder {
		t.Errorf("Expected placeholder for missing cell, got %q", result.Rows[0][1])
	}
	if result.Rows[0][2] != "ACTIVE" {
		t.Errorf("Expected render function output, got %q", result.Rows[0][2])
	}
}

func TestWriteCSV(t *testing.T) {
	tbl := New(sampleColumns(), "")
	tbl.SetPageSize(5) // export must ignore pagination
	var sb strings.Builder
	if err := tbl.WriteCSV(&sb, sampleRows(12)); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 13 {
		t.Errorf("Expected header + 12 rows, got %d lines", len(lines))
	}
	if lines[0] != "Name,Role" {
		t.Errorf("Unexpected header line: %q", lines[0])
	}
}
