package catalog

import "strings"

// Record describes one downloadable data file in the catalog.
type Record struct {
	Region  string
	Quadkey string
	URL     string
	Size    string
	Updated string
}

// SortField names a sortable column.
type SortField int

const (
	FieldRegion SortField = iota
	FieldQuadkey
	FieldSize
	FieldUpdated
)

// Direction is the sort direction of a column.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionAsc
	DirectionDesc
)

// String returns "asc", "desc" or "" for unsorted.
func (d Direction) String() string {
	switch d {
	case DirectionAsc:
		return "asc"
	case DirectionDesc:
		return "desc"
	}
	return ""
}

// ParseDirection is the inverse of Direction.String. Unknown values are
// unsorted.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return DirectionAsc
	case "desc":
		return DirectionDesc
	}
	return DirectionNone
}

var fieldNames = map[SortField]string{
	FieldRegion:  "region",
	FieldQuadkey: "quadkey",
	FieldSize:    "size",
	FieldUpdated: "updated",
}

// Fields lists sortable columns in display order.
func Fields() []SortField {
	return []SortField{FieldRegion, FieldQuadkey, FieldSize, FieldUpdated}
}

// String returns the lowercase column name.
func (f SortField) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseField resolves a column name. Accepts the aliases used by the CLI.
func ParseField(name string) (SortField, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "region", "location":
		return FieldRegion, true
	case "quadkey", "id", "identifier":
		return FieldQuadkey, true
	case "size", "bytes":
		return FieldSize, true
	case "updated", "date":
		return FieldUpdated, true
	}
	return FieldSize, false
}

// SortState is the current column and direction.
type SortState struct {
	Field     SortField
	Direction Direction
}

// DefaultSort is the initial sort: size column, unsorted.
func DefaultSort() SortState {
	return SortState{Field: FieldSize, Direction: DirectionNone}
}

// Request returns the state after the user asks to sort by field.
// Repeated requests on the same field cycle asc, desc, none; a different field
// starts over at asc.
func (s SortState) Request(field SortField) SortState {
	if s.Field != field {
		return SortState{Field: field, Direction: DirectionAsc}
	}
	switch s.Direction {
	case DirectionAsc:
		return SortState{Field: field, Direction: DirectionDesc}
	case DirectionDesc:
		return SortState{Field: field, Direction: DirectionNone}
	default:
		return SortState{Field: field, Direction: DirectionAsc}
	}
}

// Active reports whether the state orders rows at all.
func (s SortState) Active() bool {
	return s.Direction != DirectionNone
}

// Progress reports how far an export has run.
type Progress struct {
	Processed int
	Total     int
	Skipped   int
}

// Percent returns the completed fraction in [0,1].
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Processed) / float64(p.Total)
}
