package tabular

import "testing"

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    Format
		wantErr bool
	}{
		{name: "csv", value: "csv", want: FormatCSV},
		{name: "upper", value: "CSV", want: FormatCSV},
		{name: "mixed", value: "Excel", want: FormatExcel},
		{name: "json", value: "json", want: FormatJSON},
		{name: "empty defaults to csv", value: "", want: FormatCSV},
		{name: "padded", value: "  json ", want: FormatJSON},
		{name: "xml rejected", value: "xml", wantErr: true},
		{name: "extension is not a format", value: "xlsx", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseFormat(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{path: "data.csv", want: FormatCSV, ok: true},
		{path: "Report.XLSX", want: FormatExcel, ok: true},
		{path: "old.xls", want: FormatExcel, ok: true},
		{path: "records.json", want: FormatJSON, ok: true},
		{path: "notes.txt", ok: false},
		{path: "noextension", ok: false},
	}

	for _, tt := range tests {
		got, ok := DetectFormat(tt.path)
		if ok != tt.ok {
			t.Errorf("DetectFormat(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("DetectFormat(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "text", want: "text"},
		{name: "nil", value: nil, want: ""},
		{name: "bool", value: true, want: "true"},
		{name: "whole float", value: float64(30), want: "30"},
		{name: "fraction", value: 1.5, want: "1.5"},
		{name: "int", value: 7, want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value); got != tt.want {
				t.Fatalf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
