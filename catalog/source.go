package catalog

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/princinho/storefront/database"
	"github.com/princinho/storefront/utils"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Source supplies the catalog once at startup.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
	Name() string
}

type StaticSource struct{}

func (StaticSource) Name() string { return "static" }

func (StaticSource) Load(context.Context) (*Catalog, error) {
	return New(builtinProducts(), builtinFeatured, builtinCategories())
}

// MongoSource reads the products and categories collections. The featured
// subset comes from each product's isFeatured field.
type MongoSource struct {
	DB *mongo.Database
}

func (MongoSource) Name() string { return "mongo" }

func (s MongoSource) Load(ctx context.Context) (*Catalog, error) {
	products, err := database.FindProducts(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	categories, err := database.FindCategories(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return New(products, nil, categories)
}

// GCSSource reads a snapshot object from a Google Cloud Storage bucket.
type GCSSource struct {
	Client *storage.Client
	Bucket string
	Object string
}

func (GCSSource) Name() string { return "gcs" }

func (s GCSSource) Load(ctx context.Context) (*Catalog, error) {
	data, err := utils.ReadGCSObject(ctx, s.Client, s.Bucket, s.Object)
	if err != nil {
		return nil, fmt.Errorf("gcs catalog: %w", err)
	}
	return DecodeSnapshot(data)
}

// R2Source reads a snapshot object from a Cloudflare R2 bucket.
type R2Source struct {
	Client *utils.R2Client
	Key    string
}

func (R2Source) Name() string { return "r2" }

func (s R2Source) Load(ctx context.Context) (*Catalog, error) {
	data, err := utils.ReadCloudObject(ctx, s.Client, s.Key)
	if err != nil {
		return nil, fmt.Errorf("r2 catalog: %w", err)
	}
	return DecodeSnapshot(data)
}
