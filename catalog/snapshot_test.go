package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshot = `{
  "products": [
    {"id": "p1", "name": "Linen Throw", "price": 59, "image": "https://cdn/p1.jpg", "category": "Home"},
    {"id": "p2", "name": "Oak Stool", "price": 120.5, "image": "https://cdn/p2.jpg", "category": "Furniture"}
  ],
  "featured": ["p2"],
  "categories": [{"id": "home", "name": "Home"}, {"id": "furniture", "name": "Furniture"}]
}`

func TestDecodeSnapshot(t *testing.T) {
	c, err := DecodeSnapshot([]byte(sampleSnapshot))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"p2"}, ids(c.Featured()))
	p, ok := c.FindBySlug("oak-stool")
	require.True(t, ok)
	assert.Equal(t, 120.5, p.Price)
}

func TestDecodeSnapshotErrors(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"products": [`))
	assert.Error(t, err)

	_, err = DecodeSnapshot([]byte(`{"products": [{"id": "a", "price": -2}]}`))
	assert.True(t, errors.Is(err, ErrInvalidPrice))
}

func TestExportSnapshotReadsBack(t *testing.T) {
	c, err := StaticSource{}.Load(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, ExportSnapshot(c, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	back, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, c.Products(), back.Products())
	assert.Equal(t, ids(c.Featured()), ids(back.Featured()))
	assert.Equal(t, c.Categories(), back.Categories())
}

func TestExportSnapshotBadPath(t *testing.T) {
	c, err := StaticSource{}.Load(context.Background())
	require.NoError(t, err)
	assert.Error(t, ExportSnapshot(c, filepath.Join(t.TempDir(), "missing", "catalog.json")))
}
