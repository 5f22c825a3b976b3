package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitesh1413/ai-data-cleaner/domain/table"
)

func TestAddAndGet(t *testing.T) {
	s := NewDatasetStore()
	tbl := table.New([]string{"a"})

	ds := s.Add("sales.csv", tbl, nil)
	require.NotEmpty(t, ds.ID)

	got, err := s.Get(ds.ID)
	require.NoError(t, err)
	assert.Equal(t, "sales.csv", got.Name)
	assert.Same(t, tbl, got.Table)
}

func TestGetMissing(t *testing.T) {
	s := NewDatasetStore()

	_, err := s.Get("nope")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	s := NewDatasetStore()
	ds := s.Add("x.csv", table.New(nil), nil)

	require.NoError(t, s.Delete(ds.ID))
	_, err := s.Get(ds.ID)
	assert.Error(t, err)

	assert.Error(t, s.Delete(ds.ID), "second delete reports not found")
}

func TestListNewestFirst(t *testing.T) {
	s := NewDatasetStore()
	s.Add("first.csv", table.New(nil), nil)
	s.Add("second.csv", table.New(nil), nil)

	list := s.List()
	require.Len(t, list, 2)
	assert.False(t, list[0].UploadedAt.Before(list[1].UploadedAt))
}
