package seed

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

//go:embed catalog/*.yaml
var catalogFiles embed.FS

// Catalog is the static shop data shipped with the binary.
type Catalog struct {
	StoreLocations  []models.CreateStoreLocationInput
	Products        []models.CreateProductInput
	BrandCategories []BrandCategorySeed
}

type BrandCategorySeed struct {
	Category     string      `yaml:"category"`
	BgClass      string      `yaml:"bg_class"`
	DisplayOrder int         `yaml:"display_order"`
	IntervalMs   int         `yaml:"interval_ms"`
	Brands       []BrandSeed `yaml:"brands"`
}

type BrandSeed struct {
	Name        string `yaml:"name"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
}

// LoadCatalog decodes the embedded YAML files.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	for file, dest := range map[string]any{
		"catalog/store_locations.yaml": &c.StoreLocations,
		"catalog/products.yaml":        &c.Products,
		"catalog/brands.yaml":          &c.BrandCategories,
	} {
		raw, err := catalogFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		if err := yaml.Unmarshal(raw, dest); err != nil {
			return nil, fmt.Errorf("decode %s: %w", file, err)
		}
	}
	return &c, nil
}
