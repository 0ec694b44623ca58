package catalog

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"megabytes", "12.7MB", 12.7 * 1024 * 1024},
		{"kilobytes", "800KB", 800 * 1024},
		{"gigabytes", "2GB", 2 * 1024 * 1024 * 1024},
		{"unitless", "512", 512},
		{"lowercase unit", "3mb", 3 * 1024 * 1024},
		{"space before unit", "1.5 KB", 1.5 * 1024},
		{"leading spaces", "  4KB", 4 * 1024},
		{"empty", "", 0},
		{"no number", "MB", 0},
		{"garbage", "abc", 0},
		{"lone dot", ".MB", 0},
		{"negative", "-3MB", 0},
		{"fraction only", ".5KB", 0.5 * 1024},
		{"exponent", "1e3", 1000},
		{"dangling exponent", "2eMB", 2 * 1024 * 1024},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseSize(tc.in); got != tc.want {
				t.Fatalf("ParseSize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseSize_UnitOrdering(t *testing.T) {
	gb := ParseSize("2GB")
	mb := ParseSize("2MB")
	kb := ParseSize("2KB")
	b := ParseSize("2")
	if !(gb > mb && mb > kb && kb > b) {
		t.Fatalf("ordering broken: GB=%v MB=%v KB=%v B=%v", gb, mb, kb, b)
	}
}

func TestParseSize_GBWinsOverOtherUnits(t *testing.T) {
	// Priority is GB, MB, KB regardless of where the suffix sits.
	if got, want := ParseSize("1KB-GB"), float64(1024*1024*1024); got != want {
		t.Fatalf("ParseSize = %v, want %v", got, want)
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1024, "1.00 KB"},
		{12.7 * 1024 * 1024, "12.70 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
	}
	for _, c := range cases {
		if got := FormatBytes(c.in); got != c.want {
			t.Fatalf("FormatBytes(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTotalSize(t *testing.T) {
	recs := []Record{{Size: "1KB"}, {Size: "2KB"}, {Size: "n/a"}}
	if got := TotalSize(recs); got != 3*1024 {
		t.Fatalf("TotalSize = %v, want %v", got, 3*1024)
	}
}

func TestIsLarge(t *testing.T) {
	tests := map[string]bool{
		"12.7MB": true,
		"800KB":  true,
		"10MB":   false,
		"4.7MB":  false,
		"1GB":    false,
		"":       false,
		"abc":    false,
	}
	for label, want := range tests {
		if got := IsLarge(label); got != want {
			t.Errorf("IsLarge(%q) = %v, want %v", label, got, want)
		}
	}
}
