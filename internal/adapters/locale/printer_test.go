package locale_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/florist/internal/adapters/locale"
	"go.trai.ch/florist/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
)

func sampleBouquet(t *testing.T) *domain.Bouquet {
	t.Helper()

	rose, err := domain.NewRose("Червона троянда", 70, 50, 150.0, "червона")
	require.NoError(t, err)
	tulip, err := domain.NewTulip("Жовтий тюльпан", 90, 40, 100.0, "жовтий")
	require.NoError(t, err)
	daisy, err := domain.NewDaisy("Біла ромашка", 85, 35, 50.0, 34)
	require.NoError(t, err)

	b := domain.NewBouquet()
	b.AddFlower(rose)
	b.AddFlower(tulip)
	b.AddFlower(daisy)
	require.NoError(t, b.AddAccessory(30.0))
	require.NoError(t, b.AddAccessory(20.0))
	return b
}

func newPrinter(t *testing.T, lang string) *locale.Printer {
	t.Helper()
	tag, err := locale.Parse(lang)
	require.NoError(t, err)
	p, err := locale.NewPrinter(tag)
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    language.Tag
		wantErr bool
	}{
		{input: "", want: language.English},
		{input: "en", want: language.English},
		{input: "en-GB", want: language.English},
		{input: "uk", want: language.Ukrainian},
		{input: "uk-UA", want: language.Ukrainian},
		{input: "UK", want: language.Ukrainian},
		{input: "de", wantErr: true},
		{input: "not a tag!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := locale.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), domain.ErrUnsupportedLanguage.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_EnglishMatchesDomainRendering(t *testing.T) {
	p := newPrinter(t, "en")
	b := sampleBouquet(t)

	for _, f := range b.Flowers() {
		assert.Equal(t, f.String(), p.Flower(f))
	}
	assert.Equal(t, b.String(), p.Bouquet(b))

	priced, err := domain.NewRose("100% silk rose", 100, 60, 12.5, "white")
	require.NoError(t, err)
	assert.Equal(t, priced.String(), p.Flower(priced), "names are never treated as format strings")
}

func TestPrinter_Ukrainian(t *testing.T) {
	p := newPrinter(t, "uk")
	b := sampleBouquet(t)

	want := "Букет:\n" +
		"Троянда червона - Червона троянда (свіжість: 70%, довжина стебла: 50 см, ціна: 150.0 грн)\n" +
		"Тюльпан (жовтий) - Жовтий тюльпан (свіжість: 90%, довжина стебла: 40 см, ціна: 100.0 грн)\n" +
		"Ромашка (пелюсток: 34) - Біла ромашка (свіжість: 85%, довжина стебла: 35 см, ціна: 50.0 грн)\n" +
		"Загальна вартість: 350.0 грн"
	assert.Equal(t, want, p.Bouquet(b))

	assert.Equal(t, "До сортування за свіжістю:", p.UnsortedHeading())
	assert.Equal(t, "Після сортування за свіжістю:", p.SortedHeading())
	assert.Equal(t, "Введіть мінімальну довжину стебла: ", p.MinPrompt())
	assert.Equal(t, "Введіть максимальну довжину стебла: ", p.MaxPrompt())
	assert.Equal(t, "Квіти з довжиною стебла в діапазоні 35-45 см:", p.RangeHeading(35, 45))
}

func TestPrinter_Headings(t *testing.T) {
	p := newPrinter(t, "en")

	assert.Equal(t, "Before sorting by freshness:", p.UnsortedHeading())
	assert.Equal(t, "After sorting by freshness:", p.SortedHeading())
	assert.Equal(t, "Enter minimum stem length: ", p.MinPrompt())
	assert.Equal(t, "Enter maximum stem length: ", p.MaxPrompt())
	assert.Equal(t, "Flowers with stem length in range -5-1000 cm:", p.RangeHeading(-5, 1000))
}

func TestPrinter_Failure(t *testing.T) {
	b := domain.NewBouquet()
	_, rangeErr := b.FindByStemLength(45, 35)
	_, baseErr := domain.NewBase("x", 120, 10, 1)

	tests := []struct {
		name   string
		lang   string
		err    error
		wanted string
	}{
		{
			name:   "invalid range en",
			lang:   "en",
			err:    rangeErr,
			wanted: "An error occurred: minimum length cannot exceed maximum length",
		},
		{
			name:   "invalid range uk",
			lang:   "uk",
			err:    rangeErr,
			wanted: "Сталася помилка: Мінімальна довжина не може бути більшою за максимальну.",
		},
		{
			name:   "freshness uk",
			lang:   "uk",
			err:    baseErr,
			wanted: "Сталася помилка: Рівень свіжості має бути в діапазоні 0-100.",
		},
		{
			name:   "malformed input with metadata",
			lang:   "uk",
			err:    zerr.With(zerr.Wrap(domain.ErrMalformedInput, ""), "input", "abc"),
			wanted: "Сталася помилка: Введене значення не є цілим числом.",
		},
		{
			name:   "untranslated message",
			lang:   "uk",
			err:    errors.New("disk on fire 100%"),
			wanted: "Сталася помилка: disk on fire 100%",
		},
		{
			name:   "outer message wins",
			lang:   "en",
			err:    zerr.Wrap(domain.ErrMissingInput, "reading maximum"),
			wanted: "An error occurred: reading maximum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPrinter(t, tt.lang)
			assert.Equal(t, tt.wanted, p.Failure(tt.err))
		})
	}
}

func TestPrinter_Tag(t *testing.T) {
	assert.Equal(t, language.Ukrainian, newPrinter(t, "uk-UA").Tag())
}
