package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissing(t *testing.T) {
	assert.True(t, NewMissingCell().IsMissing())
	assert.True(t, NewTextCell("").IsMissing(), "empty string counts as missing")
	assert.False(t, NewTextCell("0").IsMissing())
	assert.False(t, NewNumberCell(0).IsMissing(), "a genuine zero is not missing")
}

func TestCanonicalKeyDistinguishesTypes(t *testing.T) {
	assert.NotEqual(t, NewNumberCell(5).CanonicalKey(), NewTextCell("5").CanonicalKey())
	assert.NotEqual(t, NewMissingCell().CanonicalKey(), NewTextCell("").CanonicalKey())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "5", NewNumberCell(5).String())
	assert.Equal(t, "2.5", NewNumberCell(2.5).String())
	assert.Equal(t, "hello", NewTextCell("hello").String())
	assert.Equal(t, "", NewMissingCell().String())
}

func TestRowCanonicalKeyIgnoresInsertionOrder(t *testing.T) {
	a := Row{"x": NewNumberCell(1), "y": NewTextCell("b")}
	b := Row{"y": NewTextCell("b"), "x": NewNumberCell(1)}

	assert.Equal(t, a.CanonicalKey(), b.CanonicalKey())
}

func TestRowCanonicalKeyInjectiveWithDelimiterValues(t *testing.T) {
	a := Row{"a": NewTextCell("x"), "b": NewTextCell("y")}
	b := Row{"a": NewTextCell("x;b=s:y")}

	assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())

	c := Row{"k=1": NewTextCell("v")}
	d := Row{"k": NewTextCell("1;v")}
	assert.NotEqual(t, c.CanonicalKey(), d.CanonicalKey())
}

func TestRowCellFallsBackToMissing(t *testing.T) {
	r := Row{"x": NewNumberCell(1)}

	assert.True(t, r.Cell("absent").IsMissing())
	assert.False(t, r.Cell("x").IsMissing())
}

func TestColumnValuesPreservesRowOrder(t *testing.T) {
	tbl := New([]string{"v"})
	tbl.AppendRow(Row{"v": NewNumberCell(1)})
	tbl.AppendRow(Row{"v": NewNumberCell(2)})

	values := tbl.ColumnValues("v")
	assert.Len(t, values, 2)
	assert.Equal(t, 1.0, values[0].Number())
	assert.Equal(t, 2.0, values[1].Number())
}
