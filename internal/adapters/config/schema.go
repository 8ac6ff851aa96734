package config

// CatalogVersion is the only catalog schema version this build understands.
const CatalogVersion = "1"

// Catalog represents the structure of a catalog YAML file.
type Catalog struct {
	Version     string       `yaml:"version"`
	Flowers     []*FlowerDTO `yaml:"flowers"`
	Accessories []float64    `yaml:"accessories"`
}

// FlowerDTO represents one flower entry in the catalog. Variant attributes are
// pointers so the loader can tell "absent" from "zero".
type FlowerDTO struct {
	Kind       string  `yaml:"kind"`
	Name       string  `yaml:"name"`
	Freshness  int     `yaml:"freshness"`
	StemLength int     `yaml:"stemLength"`
	Price      float64 `yaml:"price"`
	Color      *string `yaml:"color"`
	Variety    *string `yaml:"variety"`
	PetalCount *int    `yaml:"petalCount"`
}
