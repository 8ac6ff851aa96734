// Package config provides the flower catalog loader for florist.
package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/florist/internal/core/domain"
	"go.trai.ch/florist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog*.yaml
var defaultCatalogs embed.FS

// DefaultCatalogName is how the embedded catalog is referred to in logs and errors.
const DefaultCatalogName = "<built-in catalog>"

// Loader implements ports.CatalogLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the catalog at path, or the built-in catalog for lang when path is
// empty, and builds a bouquet from it in file order. Languages without a
// built-in catalog get the English one.
func (l *Loader) Load(path, lang string) (*domain.Bouquet, error) {
	data, name, err := readCatalog(path, lang)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrCatalogReadFailed.Error())
		return nil, zerr.With(err, "path", name)
	}

	catalog, err := parseCatalog(data, name)
	if err != nil {
		return nil, err
	}

	bouquet, err := l.buildBouquet(catalog)
	if err != nil {
		return nil, zerr.With(err, "path", name)
	}

	if path != "" {
		l.Logger.Info(fmt.Sprintf("loaded %d flowers and %d accessories from %s",
			bouquet.Len(), len(catalog.Accessories), path))
	}
	return bouquet, nil
}

func readCatalog(path, lang string) ([]byte, string, error) {
	if path == "" {
		data, err := defaultCatalog(lang)
		return data, DefaultCatalogName, err
	}

	//nolint:gosec // The catalog path is chosen by the user on purpose.
	data, err := os.ReadFile(path)
	return data, path, err
}

func defaultCatalog(lang string) ([]byte, error) {
	if lang != "" {
		if data, err := defaultCatalogs.ReadFile("default_catalog_" + lang + ".yaml"); err == nil {
			return data, nil
		}
	}
	return defaultCatalogs.ReadFile("default_catalog.yaml")
}

func parseCatalog(data []byte, name string) (*Catalog, error) {
	var catalog Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		err = zerr.Wrap(err, domain.ErrCatalogParseFailed.Error())
		return nil, zerr.With(err, "path", name)
	}

	if catalog.Version != "" && catalog.Version != CatalogVersion {
		err := zerr.With(domain.ErrUnsupportedCatalogVersion, "version", catalog.Version)
		return nil, zerr.With(err, "path", name)
	}

	return &catalog, nil
}

func (l *Loader) buildBouquet(catalog *Catalog) (*domain.Bouquet, error) {
	bouquet := domain.NewBouquet()

	for i, dto := range catalog.Flowers {
		if dto == nil {
			continue
		}
		flower, err := l.buildFlower(i+1, dto)
		if err != nil {
			return nil, zerr.With(err, "flower", i+1)
		}
		bouquet.AddFlower(flower)
	}

	for i, price := range catalog.Accessories {
		if err := bouquet.AddAccessory(price); err != nil {
			return nil, zerr.With(err, "accessory", i+1)
		}
	}

	return bouquet, nil
}

func (l *Loader) buildFlower(position int, dto *FlowerDTO) (domain.Flower, error) {
	kind := domain.Kind(strings.ToLower(strings.TrimSpace(dto.Kind)))

	switch kind {
	case domain.KindRose:
		l.warnIgnored(position, kind, "variety", dto.Variety != nil)
		l.warnIgnored(position, kind, "petalCount", dto.PetalCount != nil)
		return domain.NewRose(dto.Name, dto.Freshness, dto.StemLength, dto.Price, deref(dto.Color))
	case domain.KindTulip:
		l.warnIgnored(position, kind, "color", dto.Color != nil)
		l.warnIgnored(position, kind, "petalCount", dto.PetalCount != nil)
		return domain.NewTulip(dto.Name, dto.Freshness, dto.StemLength, dto.Price, deref(dto.Variety))
	case domain.KindDaisy:
		l.warnIgnored(position, kind, "color", dto.Color != nil)
		l.warnIgnored(position, kind, "variety", dto.Variety != nil)
		return domain.NewDaisy(dto.Name, dto.Freshness, dto.StemLength, dto.Price, deref(dto.PetalCount))
	default:
		return nil, zerr.With(domain.ErrUnknownFlowerKind, "kind", dto.Kind)
	}
}

func (l *Loader) warnIgnored(position int, kind domain.Kind, field string, set bool) {
	if !set {
		return
	}
	l.Logger.Warn(fmt.Sprintf("'%s' has no effect on a %s (flower %d)", field, kind, position))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
