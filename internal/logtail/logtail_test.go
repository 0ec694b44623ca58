package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "none.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read missing = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"error","export_id":"abc","items":3,"error":"disk full","time":"2024-05-01T08:00:00Z","message":"export failed"}`
	e, ok := Parse(line)
	if !ok {
		t.Fatalf("Parse returned ok=false")
	}
	if e.Level != "error" || e.Message != "export failed" || e.Error != "disk full" {
		t.Fatalf("entry = %+v", e)
	}
	if !e.Time.Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("Time = %v", e.Time)
	}
	want := map[string]string{"export_id": "abc", "items": "3"}
	if !reflect.DeepEqual(e.Fields, want) {
		t.Fatalf("Fields = %v, want %v", e.Fields, want)
	}
}

func TestParse_PlainText(t *testing.T) {
	e, ok := Parse("not json")
	if ok || e.Message != "not json" {
		t.Fatalf("Parse plain = %+v, %v", e, ok)
	}
	if got := Format(e); got != "not json" {
		t.Fatalf("Format plain = %q", got)
	}
}

func TestFormat(t *testing.T) {
	e := Entry{
		Level:   "info",
		Message: "export finished",
		Fields:  map[string]string{"path": "/tmp/a.zip", "export_id": "abc"},
	}
	want := "INFO export finished export_id=abc path=/tmp/a.zip"
	if got := Format(e); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}

	e.Error = "boom"
	if got := Format(e); !strings.HasSuffix(got, "error=boom") {
		t.Fatalf("Format with error = %q", got)
	}
}

func TestFormatLines(t *testing.T) {
	in := []string{`{"level":"warn","message":"slow"}`, "raw"}
	got := FormatLines(in)
	want := []string{"WARN slow", "raw"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FormatLines = %v, want %v", got, want)
	}
}
