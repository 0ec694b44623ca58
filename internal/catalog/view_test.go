package catalog

import (
	"reflect"
	"testing"
)

func sampleRecords() []Record {
	return []Record{
		{Region: "Casablanca-Settat", Quadkey: "031111322", Size: "12.7MB", Updated: "2023-06-13"},
		{Region: "Souss-Massa", Quadkey: "031113001", Size: "800KB", Updated: "2023-04-25"},
		{Region: "casablanca-settat", Quadkey: "031111300", Size: "1.2GB", Updated: "2024-01-17"},
		{Region: "Oriental", Quadkey: "031102210", Size: "5MB", Updated: "2023-09-04"},
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	recs := sampleRecords()
	got := Filter(recs, "")
	if !reflect.DeepEqual(got, recs) {
		t.Fatalf("Filter empty = %#v, want input", got)
	}
	got[0].Quadkey = "changed"
	if recs[0].Quadkey == "changed" {
		t.Fatalf("Filter must return a fresh slice")
	}
}

func TestFilter_Matching(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"quadkey prefix", "03111", []string{"031111322", "031113001", "031111300"}},
		{"region ignores case", "CASABLANCA", []string{"031111322", "031111300"}},
		{"region substring", "massa", []string{"031113001"}},
		{"no match", "zzz", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Quadkeys(Filter(sampleRecords(), tc.query))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestFilter_QuadkeyIsCaseSensitive(t *testing.T) {
	recs := []Record{{Region: "x", Quadkey: "AbC"}}
	if got := Filter(recs, "abc"); len(got) != 0 {
		t.Fatalf("Filter matched quadkey ignoring case: %v", got)
	}
	if got := Filter(recs, "AbC"); len(got) != 1 {
		t.Fatalf("Filter exact quadkey = %v, want 1 match", got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	for _, q := range []string{"", "0311", "settat", "nothing"} {
		once := Filter(sampleRecords(), q)
		twice := Filter(once, q)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("Filter(%q) not idempotent: %v vs %v", q, once, twice)
		}
	}
}

func TestSort_NoneKeepsOrder(t *testing.T) {
	recs := sampleRecords()
	for _, f := range Fields() {
		got := Sort(recs, SortState{Field: f, Direction: DirectionNone})
		if !reflect.DeepEqual(got, recs) {
			t.Fatalf("Sort(%s, none) reordered rows", f)
		}
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	recs := sampleRecords()
	before := Quadkeys(recs)
	_ = Sort(recs, SortState{Field: FieldQuadkey, Direction: DirectionAsc})
	if !reflect.DeepEqual(Quadkeys(recs), before) {
		t.Fatalf("Sort mutated input")
	}
}

func TestSort_BySizeUsesBytes(t *testing.T) {
	got := Quadkeys(Sort(sampleRecords(), SortState{Field: FieldSize, Direction: DirectionAsc}))
	want := []string{"031113001", "031102210", "031111322", "031111300"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sort size asc = %v, want %v", got, want)
	}
}

func TestSort_StringsAreBytewise(t *testing.T) {
	got := Quadkeys(Sort(sampleRecords(), SortState{Field: FieldRegion, Direction: DirectionAsc}))
	// Uppercase letters order before lowercase ones.
	want := []string{"031111322", "031102210", "031113001", "031111300"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sort region asc = %v, want %v", got, want)
	}
}

func TestSort_DescIsReverseOfAsc(t *testing.T) {
	for _, f := range Fields() {
		asc := Quadkeys(Sort(sampleRecords(), SortState{Field: f, Direction: DirectionAsc}))
		desc := Quadkeys(Sort(sampleRecords(), SortState{Field: f, Direction: DirectionDesc}))
		for i := range asc {
			if asc[i] != desc[len(desc)-1-i] {
				t.Fatalf("field %s: desc %v is not reverse of asc %v", f, desc, asc)
			}
		}
	}
}

func TestSort_StableOnTies(t *testing.T) {
	recs := []Record{
		{Quadkey: "a", Size: "1KB"},
		{Quadkey: "b", Size: "1024"},
		{Quadkey: "c", Size: "1KB"},
	}
	for _, dir := range []Direction{DirectionAsc, DirectionDesc} {
		got := Quadkeys(Sort(recs, SortState{Field: FieldSize, Direction: dir}))
		if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
			t.Fatalf("dir %v: ties reordered: %v", dir, got)
		}
	}
}

func TestSortState_RequestCycle(t *testing.T) {
	s := DefaultSort()
	if s.Field != FieldSize || s.Direction != DirectionNone {
		t.Fatalf("DefaultSort = %+v", s)
	}

	s = s.Request(FieldRegion)
	if s != (SortState{FieldRegion, DirectionAsc}) {
		t.Fatalf("first request = %+v, want region asc", s)
	}
	s = s.Request(FieldRegion)
	if s.Direction != DirectionDesc {
		t.Fatalf("second request = %+v, want desc", s)
	}
	s = s.Request(FieldRegion)
	if s.Direction != DirectionNone {
		t.Fatalf("third request = %+v, want none", s)
	}
	s = s.Request(FieldRegion)
	if s.Direction != DirectionAsc {
		t.Fatalf("fourth request = %+v, want asc", s)
	}

	s = s.Request(FieldRegion).Request(FieldQuadkey)
	if s != (SortState{FieldQuadkey, DirectionAsc}) {
		t.Fatalf("switching field = %+v, want quadkey asc", s)
	}
}

func TestSortState_DefaultFieldStartsAscending(t *testing.T) {
	if got := DefaultSort().Request(FieldSize); got.Direction != DirectionAsc {
		t.Fatalf("Request on default field = %+v, want asc", got)
	}
}

func TestParseField(t *testing.T) {
	cases := map[string]SortField{
		"region": FieldRegion, "Location": FieldRegion,
		"id": FieldQuadkey, "quadkey": FieldQuadkey,
		"size": FieldSize, " date ": FieldUpdated,
	}
	for in, want := range cases {
		got, ok := ParseField(in)
		if !ok || got != want {
			t.Fatalf("ParseField(%q) = %v,%v want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseField("colour"); ok {
		t.Fatalf("ParseField accepted unknown field")
	}
}

func TestView_EndToEndSizeOrder(t *testing.T) {
	recs := []Record{
		{Quadkey: "Q1", Size: "12.7MB"},
		{Quadkey: "Q2", Size: "800KB"},
	}
	got := Quadkeys(View(recs, "", SortState{Field: FieldSize, Direction: DirectionAsc}))
	if !reflect.DeepEqual(got, []string{"Q2", "Q1"}) {
		t.Fatalf("View = %v, want [Q2 Q1]", got)
	}
}

func TestDirection_RoundTrip(t *testing.T) {
	for _, d := range []Direction{DirectionNone, DirectionAsc, DirectionDesc} {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if got := ParseDirection("sideways"); got != DirectionNone {
		t.Errorf("ParseDirection(sideways) = %v", got)
	}
}
