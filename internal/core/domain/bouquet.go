package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Bouquet owns an ordered list of flowers and a separate list of accessory prices.
type Bouquet struct {
	flowers     []Flower
	accessories []float64
}

// NewBouquet returns an empty bouquet.
func NewBouquet() *Bouquet {
	return &Bouquet{}
}

// AddFlower appends a flower. Nil flowers are ignored.
func (b *Bouquet) AddFlower(f Flower) {
	if f == nil {
		return
	}
	b.flowers = append(b.flowers, f)
}

// AddAccessory appends an accessory price.
func (b *Bouquet) AddAccessory(price float64) error {
	if !(price > 0) {
		return reject(ErrNonPositiveAccessoryPrice, "price", price)
	}
	b.accessories = append(b.accessories, price)
	return nil
}

// Flowers returns a copy of the flowers in their current order.
func (b *Bouquet) Flowers() []Flower {
	return slices.Clone(b.flowers)
}

// Accessories returns a copy of the accessory prices in insertion order.
func (b *Bouquet) Accessories() []float64 {
	return slices.Clone(b.accessories)
}

// Len returns the number of flowers.
func (b *Bouquet) Len() int {
	return len(b.flowers)
}

// TotalPrice sums the flower prices and then the accessory prices, in order.
func (b *Bouquet) TotalPrice() float64 {
	var total float64
	for _, f := range b.flowers {
		total += f.Price()
	}
	for _, price := range b.accessories {
		total += price
	}
	return total
}

// SortByFreshness reorders the flowers from freshest to least fresh.
// Flowers with equal freshness keep their relative order.
func (b *Bouquet) SortByFreshness() {
	slices.SortStableFunc(b.flowers, func(x, y Flower) int {
		return cmp.Compare(y.Freshness(), x.Freshness())
	})
}

// FindByStemLength returns the flowers whose stem length lies in [minLength, maxLength],
// in their current order.
func (b *Bouquet) FindByStemLength(minLength, maxLength int) ([]Flower, error) {
	if minLength > maxLength {
		return nil, reject(ErrInvalidRange, "range", [2]int{minLength, maxLength})
	}
	matches := make([]Flower, 0, len(b.flowers))
	for _, f := range b.flowers {
		if l := f.StemLength(); l >= minLength && l <= maxLength {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

func (b *Bouquet) String() string {
	var sb strings.Builder
	sb.WriteString("Bouquet:\n")
	for _, f := range b.flowers {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("Total price: ")
	sb.WriteString(FormatAmount(b.TotalPrice()))
	sb.WriteString(" UAH")
	return sb.String()
}
