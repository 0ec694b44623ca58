package catalog

import (
	"sort"
	"strings"
)

// Filter returns the records whose quadkey contains query (case-sensitive) or
// whose region contains it ignoring case. Order is preserved and the input is
// never modified.
func Filter(records []Record, query string) []Record {
	out := make([]Record, 0, len(records))
	if query == "" {
		return append(out, records...)
	}
	lowered := strings.ToLower(query)
	for _, r := range records {
		if strings.Contains(r.Quadkey, query) || strings.Contains(strings.ToLower(r.Region), lowered) {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a stably sorted copy of records. With no direction the copy
// keeps input order. Strings compare bytewise, so dates sort as text.
func Sort(records []Record, state SortState) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	if !state.Active() {
		return out
	}

	less := lessFor(state.Field)
	if state.Direction == DirectionDesc {
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

func lessFor(field SortField) func(a, b Record) bool {
	switch field {
	case FieldRegion:
		return func(a, b Record) bool { return a.Region < b.Region }
	case FieldQuadkey:
		return func(a, b Record) bool { return a.Quadkey < b.Quadkey }
	case FieldUpdated:
		return func(a, b Record) bool { return a.Updated < b.Updated }
	default:
		return func(a, b Record) bool { return ParseSize(a.Size) < ParseSize(b.Size) }
	}
}

// View filters then sorts, which is what every table render shows.
func View(records []Record, query string, state SortState) []Record {
	return Sort(Filter(records, query), state)
}

// Quadkeys extracts the identifiers of records in order.
func Quadkeys(records []Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.Quadkey
	}
	return ids
}
