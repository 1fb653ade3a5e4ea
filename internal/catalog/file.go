package catalog

import (
	"PharmaCS/entity"
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a product list from a JSON file. Used for local runs and
// for seeding an empty database.
func LoadFile(path string) ([]entity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return products, nil
}
