package database

import (
	"context"
	"fmt"

	"github.com/princinho/storefront/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// FindProducts returns every product in natural (insertion) order, which is
// the catalog's "featured" order.
func FindProducts(ctx context.Context, db *mongo.Database) ([]models.Product, error) {
	return findAll[models.Product](ctx, db.Collection(ProductsCollection))
}

func FindCategories(ctx context.Context, db *mongo.Database) ([]models.Category, error) {
	return findAll[models.Category](ctx, db.Collection(CategoriesCollection))
}

func findAll[T any](ctx context.Context, col *mongo.Collection) ([]T, error) {
	cursor, err := col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	return decodeAll[T](ctx, cursor, col.Name())
}

// decodeAll drains and closes cursor.
func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor, name string) ([]T, error) {
	defer cursor.Close(ctx)

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	return items, nil
}

type SeedResult struct {
	Products   int64
	Categories int64
}

// SeedCatalog inserts the given products and categories unless a document
// with the same id already exists. Existing documents are left untouched.
func SeedCatalog(ctx context.Context, db *mongo.Database, products []models.Product, categories []models.Category) (SeedResult, error) {
	var res SeedResult
	opts := options.UpdateOne().SetUpsert(true)

	productsCol := db.Collection(ProductsCollection)
	for _, p := range products {
		r, err := productsCol.UpdateOne(ctx, bson.M{"_id": p.Id}, productSeed(p), opts)
		if err != nil {
			return res, fmt.Errorf("seed product %s: %w", p.Id, err)
		}
		res.Products += r.UpsertedCount
	}

	categoriesCol := db.Collection(CategoriesCollection)
	for _, c := range categories {
		r, err := categoriesCol.UpdateOne(ctx, bson.M{"_id": c.Id}, categorySeed(c), opts)
		if err != nil {
			return res, fmt.Errorf("seed category %s: %w", c.Id, err)
		}
		res.Categories += r.UpsertedCount
	}
	return res, nil
}

// productSeed only sets fields on insert; _id comes from the upsert filter.
func productSeed(p models.Product) bson.M {
	return bson.M{"$setOnInsert": bson.M{
		"name":        p.Name,
		"price":       p.Price,
		"image":       p.Image,
		"category":    p.Category,
		"slug":        p.Slug,
		"description": p.Description,
		"isFeatured":  p.IsFeatured,
	}}
}

func categorySeed(c models.Category) bson.M {
	return bson.M{"$setOnInsert": bson.M{
		"name":  c.Name,
		"image": c.Image,
	}}
}
