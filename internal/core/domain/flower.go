package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinFreshness is the lowest accepted freshness, in percent.
	MinFreshness = 0
	// MaxFreshness is the highest accepted freshness, in percent.
	MaxFreshness = 100
)

// Kind identifies a flower variant.
type Kind string

const (
	// KindRose tags a Rose.
	KindRose Kind = "rose"
	// KindTulip tags a Tulip.
	KindTulip Kind = "tulip"
	// KindDaisy tags a Daisy.
	KindDaisy Kind = "daisy"
)

// Flower is a validated, immutable item that can be added to a Bouquet.
type Flower interface {
	Name() string
	Freshness() int
	StemLength() int
	Price() float64
	Kind() Kind
	fmt.Stringer
}

// Base holds the attributes every flower variant shares.
// It is only obtainable through NewBase, so its invariants always hold.
type Base struct {
	name       string
	freshness  int
	stemLength int
	price      float64
}

// NewBase validates the shared flower attributes.
func NewBase(name string, freshness, stemLength int, price float64) (Base, error) {
	if freshness < MinFreshness || freshness > MaxFreshness {
		return Base{}, reject(ErrFreshnessOutOfRange, "freshness", freshness)
	}
	if stemLength <= 0 {
		return Base{}, reject(ErrNonPositiveStemLength, "stem_length", stemLength)
	}
	// Negated comparison so that NaN is rejected too.
	if !(price > 0) {
		return Base{}, reject(ErrNonPositivePrice, "price", price)
	}
	return Base{
		name:       name,
		freshness:  freshness,
		stemLength: stemLength,
		price:      price,
	}, nil
}

// Name returns the display name.
func (b Base) Name() string { return b.name }

// Freshness returns the freshness in percent.
func (b Base) Freshness() int { return b.freshness }

// StemLength returns the stem length in centimetres.
func (b Base) StemLength() int { return b.stemLength }

// Price returns the unit price.
func (b Base) Price() float64 { return b.price }

// String renders the shared attributes.
func (b Base) String() string {
	return fmt.Sprintf("%s (freshness: %d%%, stem length: %d cm, price: %s UAH)",
		b.name, b.freshness, b.stemLength, FormatAmount(b.price))
}

// Rose is a flower described by its colour.
type Rose struct {
	Base
	color string
}

// NewRose creates a Rose.
func NewRose(name string, freshness, stemLength int, price float64, color string) (*Rose, error) {
	base, err := NewBase(name, freshness, stemLength, price)
	if err != nil {
		return nil, err
	}
	return &Rose{Base: base, color: color}, nil
}

// Color returns the rose colour.
func (r *Rose) Color() string { return r.color }

// Kind implements Flower.
func (r *Rose) Kind() Kind { return KindRose }

func (r *Rose) String() string {
	return "Rose " + r.color + " - " + r.Base.String()
}

// Tulip is a flower described by its variety.
type Tulip struct {
	Base
	variety string
}

// NewTulip creates a Tulip.
func NewTulip(name string, freshness, stemLength int, price float64, variety string) (*Tulip, error) {
	base, err := NewBase(name, freshness, stemLength, price)
	if err != nil {
		return nil, err
	}
	return &Tulip{Base: base, variety: variety}, nil
}

// Variety returns the tulip variety.
func (t *Tulip) Variety() string { return t.variety }

// Kind implements Flower.
func (t *Tulip) Kind() Kind { return KindTulip }

func (t *Tulip) String() string {
	return "Tulip (" + t.variety + ") - " + t.Base.String()
}

// Daisy is a flower described by its petal count.
type Daisy struct {
	Base
	petalCount int
}

// NewDaisy creates a Daisy.
func NewDaisy(name string, freshness, stemLength int, price float64, petalCount int) (*Daisy, error) {
	base, err := NewBase(name, freshness, stemLength, price)
	if err != nil {
		return nil, err
	}
	return &Daisy{Base: base, petalCount: petalCount}, nil
}

// PetalCount returns the number of petals.
func (d *Daisy) PetalCount() int { return d.petalCount }

// Kind implements Flower.
func (d *Daisy) Kind() Kind { return KindDaisy }

func (d *Daisy) String() string {
	return "Daisy (petals: " + strconv.Itoa(d.petalCount) + ") - " + d.Base.String()
}

// FormatAmount renders a price as plain numeric text that always carries a
// fractional part, e.g. 150 as "150.0" and 12.5 as "12.5".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}
