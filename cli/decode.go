package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"inventory_manager/domain"
)

// yamlProduct keeps the price as text so it goes through domain.ParsePrice.
type yamlProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Quantity    int    `yaml:"quantity"`
	Price       string `yaml:"price"`
}

func readProductFile(path string) ([]domain.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	products, err := decodeProducts(filepath.Ext(path), b)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return products, nil
}

// decodeProducts accepts a YAML list for .yaml/.yml files, and otherwise a
// JSON array or a stream of JSON objects (NDJSON or a single object).
func decodeProducts(ext string, b []byte) ([]domain.Product, error) {
	btrim := bytes.TrimSpace(b)
	if len(btrim) == 0 {
		return nil, errors.New("empty file")
	}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return decodeYAML(btrim)
	}

	var products []domain.Product

	// JSON array
	if btrim[0] == '[' {
		if err := json.Unmarshal(btrim, &products); err != nil {
			return nil, err
		}
		return products, nil
	}

	// NDJSON or one or more JSON objects, possibly spanning lines
	dec := json.NewDecoder(bytes.NewReader(btrim))
	for dec.More() {
		var p domain.Product
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("item %d: %w", len(products)+1, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func decodeYAML(b []byte) ([]domain.Product, error) {
	var items []yamlProduct
	if err := yaml.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(items))
	for i, it := range items {
		if it.Price == "" {
			it.Price = "0"
		}
		d, err := domain.ParsePrice(it.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		products = append(products, domain.Product{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       d,
		})
	}
	return products, nil
}
