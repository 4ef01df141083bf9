package workbook

import (
	"context"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.xlsx")
	grids := map[string][][]string{
		"Riset": {
			{"No", "Project Type", "Backlog", "Priority", "Aktivitas"},
			{"1", "RKAP", "B1", "1", "Survey"},
		},
		"System Development": {
			{"No", "Item"},
			{"1", "Deploy"},
		},
	}
	if err := Write(path, []string{"Riset", "System Development"}, grids); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	return path
}

func TestGrid(t *testing.T) {
	wb := New(writeFixture(t))

	grid, err := wb.Grid(context.Background(), "Riset", "A:M")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if len(grid) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(grid))
	}
	if grid[1][1] != "RKAP" || grid[1][4] != "Survey" {
		t.Errorf("Unexpected row: %v", grid[1])
	}
}

func TestGridClipsColumns(t *testing.T) {
	wb := New(writeFixture(t))

	grid, err := wb.Grid(context.Background(), "Riset", "B:C")
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if len(grid[0]) != 2 || grid[0][0] != "Project Type" || grid[0][1] != "Backlog" {
		t.Errorf("Expected [Project Type Backlog], got %v", grid[0])
	}
}

func TestGridMissingSheet(t *testing.T) {
	wb := New(writeFixture(t))
	if _, err := wb.Grid(context.Background(), "Digitalisasi", "A:M"); err == nil {
		t.Fatal("Expected error for missing sheet")
	}
}

func TestSheets(t *testing.T) {
	wb := New(writeFixture(t))
	sheets, err := wb.Sheets(context.Background())
	if err != nil {
		t.Fatalf("Sheets failed: %v", err)
	}
	if len(sheets) != 2 || sheets[0] != "Riset" || sheets[1] != "System Development" {
		t.Errorf("Unexpected sheets: %v", sheets)
	}
}

func TestColumnSpan(t *testing.T) {
	tests := []struct {
		in          string
		first, last int
		wantErr     bool
	}{
		{"A:M", 0, 12, false},
		{"A:I", 0, 8, false},
		{"A1:C20", 0, 2, false},
		{"", 0, -1, false},
		{"C", 2, 2, false},
		{"M:A", 0, 0, true},
	}
	for _, tt := range tests {
		first, last, err := ColumnSpan(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ColumnSpan(%q): unexpected error %v", tt.in, err)
			continue
		}
		if !tt.wantErr && (first != tt.first || last != tt.last) {
			t.Errorf("ColumnSpan(%q): expected %d,%d got %d,%d", tt.in, tt.first, tt.last, first, last)
		}
	}
}
