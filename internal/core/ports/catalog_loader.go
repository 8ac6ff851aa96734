package ports

import "go.trai.ch/florist/internal/core/domain"

// CatalogLoader defines the interface for loading the shop's flower catalog.
//
//go:generate mockgen -source=catalog_loader.go -destination=mocks/mock_catalog_loader.go -package=mocks
type CatalogLoader interface {
	// Load reads the catalog at path and returns the bouquet it describes.
	// An empty path selects the built-in sample catalog written in lang, a
	// base language code such as "en" or "uk".
	Load(path, lang string) (*domain.Bouquet, error)
}
