package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tabload/tabular"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeExcelFile(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(dir, name)

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := file.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeFile(t, dir, "input.csv", "name,age,city\nalice,30,berlin\nbob,25,paris\n")

	dataset, err := New(zap.NewNop()).Load(path, "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantColumns := []string{"name", "age", "city"}
	if len(dataset.Columns) != len(wantColumns) {
		t.Fatalf("expected %d columns, got %d", len(wantColumns), len(dataset.Columns))
	}
	for i, column := range wantColumns {
		if dataset.Columns[i] != column {
			t.Errorf("column %d = %q, want %q", i, dataset.Columns[i], column)
		}
	}
	if dataset.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", dataset.NumRows())
	}
	if got := dataset.Rows[0]["name"]; got != "alice" {
		t.Errorf("row 0 name = %v, want alice", got)
	}
	if got := dataset.Rows[1]["age"]; got != "25" {
		t.Errorf("row 1 age = %v, want 25", got)
	}
}

func TestLoad_Excel(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeExcelFile(t, dir, "input.xlsx", [][]string{
		{"project", "hours"},
		{"intern", "4"},
		{"delivery", "3.5"},
	})

	dataset, err := New(zap.NewNop()).Load(path, "excel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dataset.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", dataset.NumRows())
	}
	if got := dataset.Rows[0]["project"]; got != "intern" {
		t.Errorf("row 0 project = %v, want intern", got)
	}
	if got := dataset.Rows[1]["hours"]; got != "3.5" {
		t.Errorf("row 1 hours = %v, want 3.5", got)
	}
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeFile(t, dir, "input.json",
		`[{"name":"alice","age":30,"active":true},{"name":"bob","age":25,"active":false}]`)

	dataset, err := New(zap.NewNop()).Load(path, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dataset.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", dataset.NumRows())
	}
	if got := dataset.Rows[0]["age"]; got != float64(30) {
		t.Errorf("row 0 age = %v (%T), want 30", got, got)
	}
	if got := dataset.Rows[1]["active"]; got != false {
		t.Errorf("row 1 active = %v, want false", got)
	}
}

func TestLoad_FileTypeCaseInsensitive(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeFile(t, dir, "input.csv", "a,b\n1,2\n")
	load := New(zap.NewNop())

	for _, fileType := range []string{"csv", "CSV", "Csv", ""} {
		dataset, err := load.Load(path, fileType)
		if err != nil {
			t.Fatalf("fileType %q: unexpected error: %v", fileType, err)
		}
		if dataset.NumRows() != 1 {
			t.Fatalf("fileType %q: expected 1 row, got %d", fileType, dataset.NumRows())
		}
	}
}

func TestLoad_InvalidFileType(t *testing.T) {
	t.Parallel()

	// Path deliberately absent: an unknown type must fail before any
	// file access, so no NotFoundError may surface.
	_, err := New(zap.NewNop()).Load("/does/not/exist/input.xml", "xml")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var invalidErr *InvalidFormatError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidFormatError, got %T: %v", err, err)
	}
	if invalidErr.FileType != "xml" {
		t.Errorf("FileType = %q, want xml", invalidErr.FileType)
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		t.Fatal("invalid file type must not produce NotFoundError")
	}
}

func TestLoad_NotFound(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	load := New(zap.NewNop())

	for _, fileType := range []string{"csv", "excel", "json"} {
		_, err := load.Load(filepath.Join(dir, "missing."+fileType), fileType)
		if err == nil {
			t.Fatalf("fileType %q: expected error, got nil", fileType)
		}
		var notFoundErr *NotFoundError
		if !errors.As(err, &notFoundErr) {
			t.Fatalf("fileType %q: expected NotFoundError, got %T: %v", fileType, err, err)
		}
		if notFoundErr.Err == nil {
			t.Errorf("fileType %q: cause not preserved", fileType)
		}
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	load := New(zap.NewNop())

	for _, fileType := range []string{"csv", "excel", "json"} {
		path := writeFile(t, dir, "empty."+fileType, "")
		_, err := load.Load(path, fileType)
		if err == nil {
			t.Fatalf("fileType %q: expected error, got nil", fileType)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("fileType %q: expected ParseError, got %T: %v", fileType, err, err)
		}
	}
}

func TestLoad_LogsRowCount(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	path := writeFile(t, dir, "input.csv", "a,b\n1,2\n3,4\n5,6\n")

	core, logs := observer.New(zap.InfoLevel)
	if _, err := New(zap.New(core)).Load(path, "csv"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["rows"]; got != int64(3) {
		t.Errorf("rows field = %v, want 3", got)
	}
	if got := fields["path"]; got != path {
		t.Errorf("path field = %v, want %s", got, path)
	}
}

func TestLoad_NoLogOnFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	core, logs := observer.New(zap.InfoLevel)
	load := New(zap.New(core))

	if _, err := load.Load(filepath.Join(dir, "missing.csv"), "csv"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, err := load.Load("whatever", "xml"); err == nil {
		t.Fatal("expected error, got nil")
	}

	if got := logs.Len(); got != 0 {
		t.Fatalf("expected no log entries on failure, got %d", got)
	}
}

func TestLoad_RoundTripFidelity(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	want := [][]string{
		{"id", "note", "flag"},
		{"1", "plain text", "true"},
		{"2", "has, comma", ""},
		{"3", "", "false"},
	}

	content := "id,note,flag\n1,plain text,true\n2,\"has, comma\",\n3,,false\n"
	path := writeFile(t, dir, "fidelity.csv", content)

	dataset, err := New(zap.NewNop()).Load(path, "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, column := range want[0] {
		if dataset.Columns[i] != column {
			t.Errorf("column %d = %q, want %q", i, dataset.Columns[i], column)
		}
	}
	for rowIndex, record := range want[1:] {
		for colIndex, column := range want[0] {
			if got := dataset.Rows[rowIndex][column]; got != record[colIndex] {
				t.Errorf("row %d %s = %v, want %q", rowIndex, column, got, record[colIndex])
			}
		}
	}
}

func TestLoad_DefaultsEmptyFormatToCSV(t *testing.T) {
	t.Parallel()

	format, err := tabular.ParseFormat("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != tabular.FormatCSV {
		t.Fatalf("expected csv, got %s", format)
	}
}
