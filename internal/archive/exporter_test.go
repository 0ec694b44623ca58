package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/five82/linkshelf/internal/catalog"
)

func openZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	out := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		if f.Method != zip.Deflate {
			t.Fatalf("entry %s method = %d, want deflate", f.Name, f.Method)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = string(body)
	}
	return out
}

func TestExport_OneEntryPerRecord(t *testing.T) {
	recs := []catalog.Record{
		{Region: "Oriental", Quadkey: "Q1", URL: "https://example.test/q1.csv.gz", Size: "12.7MB", Updated: "2023-04-25"},
		{Region: "Souss-Massa", Quadkey: "Q2", URL: "https://example.test/q2.csv.gz", Size: "800KB", Updated: "2023-06-13"},
	}
	e := &Exporter{}
	data, err := e.Export(recs, nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	entries := openZip(t, data)

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "Q1.txt" || names[1] != "Q2.txt" {
		t.Fatalf("entries = %v, want [Q1.txt Q2.txt]", names)
	}
	for _, rec := range recs {
		body := entries[rec.Quadkey+".txt"]
		for _, want := range []string{rec.Quadkey, rec.URL, rec.Region, rec.Size, rec.Updated} {
			if !strings.Contains(body, want) {
				t.Fatalf("entry %s missing %q:\n%s", rec.Quadkey, want, body)
			}
		}
	}
}

func TestExport_UsesFolder(t *testing.T) {
	tests := []struct {
		folder string
		want   string
	}{
		{DefaultFolder, DefaultFolder + "/031.txt"},
		{"", "031.txt"},
	}
	for _, tt := range tests {
		data, err := NewExporter(tt.folder).Export([]catalog.Record{{Quadkey: "031"}}, nil)
		if err != nil {
			t.Fatalf("Export(%q): %v", tt.folder, err)
		}
		entries := openZip(t, data)
		if _, ok := entries[tt.want]; !ok {
			t.Fatalf("folder %q: entries = %v, want %s", tt.folder, entries, tt.want)
		}
	}
}

func TestExport_ProgressCalledPerRecord(t *testing.T) {
	recs := []catalog.Record{{Quadkey: "a"}, {Quadkey: "b"}, {Quadkey: "c"}}
	var calls []catalog.Progress
	_, err := NewExporter("x").Export(recs, func(p, total, skipped int) {
		calls = append(calls, catalog.Progress{Processed: p, Total: total, Skipped: skipped})
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(calls) != len(recs) {
		t.Fatalf("progress calls = %d, want %d", len(calls), len(recs))
	}
	for i, c := range calls {
		if c.Processed != i+1 || c.Total != 3 || c.Skipped != 0 {
			t.Fatalf("call %d = %+v", i, c)
		}
	}
	last := calls[len(calls)-1]
	if last.Processed != last.Total {
		t.Fatalf("final call = %+v, want processed == total", last)
	}
}

func TestExport_EmptyProducesValidArchive(t *testing.T) {
	called := false
	data, err := NewExporter("").Export(nil, func(int, int, int) { called = true })
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if entries := openZip(t, data); len(entries) != 0 {
		t.Fatalf("entries = %v, want none", entries)
	}
	if called {
		t.Fatalf("progress called for empty export")
	}
}

func TestExport_InvalidLevel(t *testing.T) {
	data, err := (&Exporter{Level: 42}).Export([]catalog.Record{{Quadkey: "a"}}, nil)
	if !errors.Is(err, ErrArchiveInit) {
		t.Fatalf("err = %v, want ErrArchiveInit", err)
	}
	if data != nil {
		t.Fatalf("partial archive returned")
	}
}

func TestExport_StampsModifiedTime(t *testing.T) {
	fixed := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	data, err := (&Exporter{Now: func() time.Time { return fixed }}).Export([]catalog.Record{{Quadkey: "a"}}, nil)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	if got := zr.File[0].Modified.UTC(); !got.Equal(fixed) {
		t.Fatalf("Modified = %v, want %v", got, fixed)
	}
}

func TestRenderEntry(t *testing.T) {
	body := RenderEntry(catalog.Record{Region: "R", Quadkey: "Q", URL: "U", Size: "S", Updated: "D"})
	for _, want := range []string{"Region: R", "Quadkey: Q", "Direct download URL: U", "Approximate size: S", "Updated: D", entryNote} {
		if !strings.Contains(body, want) {
			t.Fatalf("RenderEntry missing %q:\n%s", want, body)
		}
	}
	if strings.HasPrefix(body, "\n") || strings.HasSuffix(body, "\n") {
		t.Fatalf("RenderEntry should be trimmed: %q", body)
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 1, 17, 23, 30, 0, 0, time.UTC)
	if got := FileName("", now); got != "Buildings_Links_Archive_2024-01-17.zip" {
		t.Fatalf("FileName default = %q", got)
	}
	if got := FileName("Morocco_Links_Archive", now); got != "Morocco_Links_Archive_2024-01-17.zip" {
		t.Fatalf("FileName custom = %q", got)
	}
}

func TestEntryName(t *testing.T) {
	if got := EntryName("", "q"); got != "q.txt" {
		t.Fatalf("EntryName root = %q", got)
	}
	if got := EntryName("dir", "q"); got != "dir/q.txt" {
		t.Fatalf("EntryName folder = %q", got)
	}
}
