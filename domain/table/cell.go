package table

import (
	"strconv"
)

// Cell represents a single table entry with deterministic typing
type Cell struct {
	Kind       CellKind `json:"kind"`
	NumericVal *float64 `json:"numeric_val,omitempty"`
	TextVal    *string  `json:"text_val,omitempty"`
}

// CellKind defines the storage type for cells
type CellKind string

const (
	CellNumber  CellKind = "number"
	CellText    CellKind = "text"
	CellMissing CellKind = "missing"
)

// NewNumberCell creates a numeric cell
func NewNumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, NumericVal: &n}
}

// NewTextCell creates a text cell. The empty string is kept as a text
// cell so callers can still distinguish it from the absence marker,
// but IsMissing treats both the same.
func NewTextCell(s string) Cell {
	return Cell{Kind: CellText, TextVal: &s}
}

// NewMissingCell creates the absence marker
func NewMissingCell() Cell {
	return Cell{Kind: CellMissing}
}

// IsMissing reports whether the cell counts as missing for statistics.
// A cell is missing iff it is the absence marker or an empty text
// value. This is the single missing-value predicate shared by every
// statistic; no other definition may be introduced.
func (c Cell) IsMissing() bool {
	switch c.Kind {
	case CellMissing:
		return true
	case CellText:
		return c.TextVal == nil || *c.TextVal == ""
	}
	return false
}

// IsNumber returns true if the cell holds a valid number
func (c Cell) IsNumber() bool {
	return c.Kind == CellNumber && c.NumericVal != nil
}

// IsText returns true if the cell holds a non-missing text value
func (c Cell) IsText() bool {
	return c.Kind == CellText && c.TextVal != nil && *c.TextVal != ""
}

// Number returns the numeric value, or 0 if the cell is not numeric
func (c Cell) Number() float64 {
	if c.NumericVal != nil {
		return *c.NumericVal
	}
	return 0
}

// Text returns the text value, or empty string if the cell holds none
func (c Cell) Text() string {
	if c.TextVal != nil {
		return *c.TextVal
	}
	return ""
}

// String returns the display representation of the cell. Numbers use
// the shortest representation that round-trips, matching the grouping
// key used for mode computation.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		if c.NumericVal != nil {
			return strconv.FormatFloat(*c.NumericVal, 'f', -1, 64)
		}
	case CellText:
		if c.TextVal != nil {
			return *c.TextVal
		}
	case CellMissing:
		return ""
	}
	return ""
}

// CanonicalKey returns a type-tagged representation used for
// uniqueness counting and duplicate detection. The tag keeps a numeric
// 5 distinct from the text "5".
func (c Cell) CanonicalKey() string {
	switch c.Kind {
	case CellNumber:
		if c.NumericVal != nil {
			return "n:" + strconv.FormatFloat(*c.NumericVal, 'f', -1, 64)
		}
	case CellText:
		if c.TextVal != nil {
			return "s:" + *c.TextVal
		}
		return "s:"
	}
	return "m:"
}
