package linear_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/florist/internal/adapters/linear"
	"go.trai.ch/florist/internal/adapters/locale"
	"go.trai.ch/florist/internal/core/domain"
	"go.trai.ch/florist/internal/core/ports"
)

func sampleBouquet(t *testing.T) *domain.Bouquet {
	t.Helper()

	rose, err := domain.NewRose("Red rose", 70, 50, 150.0, "red")
	require.NoError(t, err)
	tulip, err := domain.NewTulip("Yellow tulip", 90, 40, 100.0, "yellow")
	require.NoError(t, err)
	daisy, err := domain.NewDaisy("White daisy", 85, 35, 50.0, 34)
	require.NoError(t, err)

	b := domain.NewBouquet()
	b.AddFlower(rose)
	b.AddFlower(tulip)
	b.AddFlower(daisy)
	require.NoError(t, b.AddAccessory(30.0))
	require.NoError(t, b.AddAccessory(20.0))
	return b
}

func newRenderer(t *testing.T, lang string, out *bytes.Buffer) *linear.Renderer {
	t.Helper()
	tag, err := locale.Parse(lang)
	require.NoError(t, err)
	printer, err := locale.NewPrinter(tag)
	require.NoError(t, err)
	return linear.NewRenderer(out, printer)
}

// playFlow drives the renderer through a whole session the way the app does,
// with the prompts written inline.
func playFlow(t *testing.T, r *linear.Renderer, out *bytes.Buffer) {
	t.Helper()
	b := sampleBouquet(t)

	r.OnBouquet(ports.StageUnsorted, b)
	b.SortByFreshness()
	r.OnBouquet(ports.StageSorted, b)

	out.WriteString(r.MinPrompt())
	out.WriteString(r.MaxPrompt())

	r.OnRange(35, 45)
	matches, err := b.FindByStemLength(35, 45)
	require.NoError(t, err)
	r.OnMatches(matches)
}

func TestRenderer_Flow(t *testing.T) {
	for _, lang := range []string{"en", "uk"} {
		t.Run(lang, func(t *testing.T) {
			var out bytes.Buffer
			playFlow(t, newRenderer(t, lang, &out), &out)

			g := goldie.New(t)
			g.Assert(t, "flow_"+lang, out.Bytes())
		})
	}
}

func TestRenderer_OnMatchesEmpty(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(t, "en", &out)

	r.OnRange(1, 2)
	r.OnMatches(nil)

	assert.Equal(t, "\nFlowers with stem length in range 1-2 cm:\n", out.String())
}

func TestRenderer_OnFailure(t *testing.T) {
	b := domain.NewBouquet()
	_, err := b.FindByStemLength(45, 35)
	require.Error(t, err)

	var en, uk bytes.Buffer
	newRenderer(t, "en", &en).OnFailure(err)
	newRenderer(t, "uk", &uk).OnFailure(err)

	assert.Equal(t, "An error occurred: minimum length cannot exceed maximum length\n", en.String())
	assert.Equal(t, "Сталася помилка: Мінімальна довжина не може бути більшою за максимальну.\n", uk.String())
}

func TestRenderer_NilStdout(t *testing.T) {
	tag, err := locale.Parse(locale.DefaultLanguage)
	require.NoError(t, err)
	printer, err := locale.NewPrinter(tag)
	require.NoError(t, err)
	assert.NotNil(t, linear.NewRenderer(nil, printer))
}
