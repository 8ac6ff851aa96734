// Package locale renders flowers, bouquets and messages in the user's language.
package locale

import (
	"errors"
	"strconv"
	"strings"

	"go.trai.ch/florist/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// Parse resolves a BCP 47 tag such as "uk" or "en-GB" to a supported language.
// Regions and scripts are ignored.
func Parse(lang string) (language.Tag, error) {
	if strings.TrimSpace(lang) == "" {
		return language.English, nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, zerr.With(domain.ErrUnsupportedLanguage, "language", lang)
	}

	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return language.English, nil
	case "uk":
		return language.Ukrainian, nil
	default:
		return language.Und, zerr.With(domain.ErrUnsupportedLanguage, "language", lang)
	}
}

// Printer formats user-facing text for one language.
type Printer struct {
	tag      language.Tag
	printer  *message.Printer
	messages map[string]string
}

// NewPrinter creates a Printer for tag. Languages without a message table
// fall back to English.
func NewPrinter(tag language.Tag) (*Printer, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))

	messages := translations[tag]
	for key, msg := range messages {
		if err := builder.SetString(tag, key, msg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to register message"), "key", key)
		}
	}

	return &Printer{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(builder)),
		messages: messages,
	}, nil
}

// Tag returns the printer's language.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Flower renders a single flower line.
func (p *Printer) Flower(f domain.Flower) string {
	base := p.printer.Sprintf(keyBase,
		f.Name(),
		strconv.Itoa(f.Freshness()),
		strconv.Itoa(f.StemLength()),
		domain.FormatAmount(f.Price()))

	switch v := f.(type) {
	case *domain.Rose:
		return p.printer.Sprintf(keyRose, v.Color(), base)
	case *domain.Tulip:
		return p.printer.Sprintf(keyTulip, v.Variety(), base)
	case *domain.Daisy:
		return p.printer.Sprintf(keyDaisy, strconv.Itoa(v.PetalCount()), base)
	default:
		return base
	}
}

// Bouquet renders the header, one line per flower and the total price.
func (p *Printer) Bouquet(b *domain.Bouquet) string {
	var sb strings.Builder
	sb.WriteString(p.printer.Sprintf(keyBouquet))
	sb.WriteByte('\n')
	for _, f := range b.Flowers() {
		sb.WriteString(p.Flower(f))
		sb.WriteByte('\n')
	}
	sb.WriteString(p.printer.Sprintf(keyTotal, domain.FormatAmount(b.TotalPrice())))
	return sb.String()
}

// UnsortedHeading introduces the bouquet before sorting.
func (p *Printer) UnsortedHeading() string { return p.printer.Sprintf(keyUnsorted) }

// SortedHeading introduces the bouquet after sorting.
func (p *Printer) SortedHeading() string { return p.printer.Sprintf(keySorted) }

// MinPrompt asks for the lower stem length bound.
func (p *Printer) MinPrompt() string { return p.printer.Sprintf(keyMinPrompt) }

// MaxPrompt asks for the upper stem length bound.
func (p *Printer) MaxPrompt() string { return p.printer.Sprintf(keyMaxPrompt) }

// RangeHeading introduces the flowers whose stem length lies in [minLength, maxLength].
func (p *Printer) RangeHeading(minLength, maxLength int) string {
	return p.printer.Sprintf(keyRange, strconv.Itoa(minLength), strconv.Itoa(maxLength))
}

// Failure renders the line shown when the flow stops on err.
func (p *Printer) Failure(err error) string {
	return p.printer.Sprintf(keyFailure, p.ErrorMessage(err))
}

// ErrorMessage returns the most specific message of err, translated when a
// translation exists. Links that only carry metadata are skipped.
func (p *Printer) ErrorMessage(err error) string {
	msg := userMessage(err)
	if translated, ok := p.messages[msg]; ok {
		return translated
	}
	return msg
}

type messager interface {
	Message() string
}

func userMessage(err error) string {
	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			return current.Error()
		}
		if m.Message() != "" {
			return m.Message()
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
