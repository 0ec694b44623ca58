package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmbeddedDataset(t *testing.T) {
	recs, err := Load("")
	if err != nil {
		t.Fatalf("Load embedded: %v", err)
	}
	if len(recs) == 0 {
		t.Fatalf("embedded dataset is empty")
	}
	seen := make(map[string]bool)
	for _, r := range recs {
		if seen[r.Quadkey] {
			t.Fatalf("duplicate quadkey %s in embedded dataset", r.Quadkey)
		}
		seen[r.Quadkey] = true
		if !strings.HasPrefix(r.URL, "https://") {
			t.Fatalf("record %s has URL %q", r.Quadkey, r.URL)
		}
		if ParseSize(r.Size) <= 0 {
			t.Fatalf("record %s has unparseable size %q", r.Quadkey, r.Size)
		}
	}
}

func TestParse_ColumnOrderAndCase(t *testing.T) {
	in := "QuadKey,SIZE,Url,location,UploadDate\n" +
		"0311,12.7MB,https://example.test/a.csv.gz,Oriental,2023-04-25\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Record{Region: "Oriental", Quadkey: "0311", URL: "https://example.test/a.csv.gz", Size: "12.7MB", Updated: "2023-04-25"}
	if len(recs) != 1 || recs[0] != want {
		t.Fatalf("Parse = %#v, want %#v", recs, want)
	}
}

func TestParse_QuotedRegion(t *testing.T) {
	in := "Location,QuadKey,Url,Size,UploadDate\n" +
		"\"Tanger, Tetouan\",0311,u,1KB,d\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if recs[0].Region != "Tanger, Tetouan" {
		t.Fatalf("Region = %q", recs[0].Region)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "missing header"},
		{"missing column", "Location,QuadKey,Url,Size\n", "missing column"},
		{"empty quadkey", "Location,QuadKey,Url,Size,UploadDate\nx,,u,1KB,d\n", "empty quadkey"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Parse error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestParse_DuplicateQuadkey(t *testing.T) {
	in := "Location,QuadKey,Url,Size,UploadDate\n" +
		"a,0311,u,1KB,d\n" +
		"b,0311,u,2KB,d\n"
	_, err := Parse(strings.NewReader(in))
	if !errors.Is(err, ErrDuplicateQuadkey) {
		t.Fatalf("Parse error = %v, want ErrDuplicateQuadkey", err)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.csv")
	body := "Location,QuadKey,Url,Size,UploadDate\nOriental,0311,u,1KB,2023-04-25\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 1 || recs[0].Quadkey != "0311" {
		t.Fatalf("Load = %#v", recs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("Load missing file returned nil error")
	}
}
