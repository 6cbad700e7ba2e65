package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/princinho/storefront/models"
)

// Snapshot is the JSON document stored in object storage.
type Snapshot struct {
	Products   []models.Product  `json:"products"`
	Featured   []string          `json:"featured"`
	Categories []models.Category `json:"categories"`
}

func DecodeSnapshot(data []byte) (*Catalog, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode catalog snapshot: %w", err)
	}
	return New(s.Products, s.Featured, s.Categories)
}

// EncodeSnapshot is the inverse of DecodeSnapshot.
func EncodeSnapshot(c *Catalog) ([]byte, error) {
	s := Snapshot{
		Products:   c.Products(),
		Featured:   c.featured,
		Categories: c.Categories(),
	}
	return json.MarshalIndent(s, "", "  ")
}

// ExportSnapshot writes c to path in the format the gcs and r2 sources read.
func ExportSnapshot(c *Catalog, path string) error {
	data, err := EncodeSnapshot(c)
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog snapshot: %w", err)
	}
	return nil
}
