package repository

import (
	"PharmaCS/entity"
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
)

// GetAllProducts loads the catalog in insertion order.
func (m *MongoDB) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(productsCollection)

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find error: %w", err)
	}
	defer cursor.Close(ctx)

	var products []entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("mongodb decode error: %w", err)
	}

	m.log.With(
		slog.Int("size", len(products)),
	).Debug("catalog loaded")

	return products, nil
}

// SeedProducts inserts the given catalog when the collection is still
// empty. An already populated collection is left untouched.
func (m *MongoDB) SeedProducts(ctx context.Context, products []entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(productsCollection)

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("mongodb count error: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}

	_, err = collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}

	m.log.With(
		slog.Int("size", len(products)),
	).Info("catalog seeded")

	return nil
}
