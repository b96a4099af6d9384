package smoke

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/okian/medalboard/internal/domain/facets"
	"github.com/okian/medalboard/internal/domain/selection"
)

// Catalog is what the generator draws selections from.
type Catalog struct {
	Years  facets.Bounds
	Step   int
	Sports []string
	// Events maps a sport to its events.
	Events map[string][]string
}

// Generator produces random but valid selections.
type Generator struct {
	rnd     *rand.Rand
	catalog Catalog
}

// NewGenerator creates a generator; seed 0 picks a time-based seed.
func NewGenerator(catalog Catalog, seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rnd:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		catalog: catalog,
	}
}

// Generate returns n selections.
func (g *Generator) Generate(n int) []selection.Criteria {
	out := make([]selection.Criteria, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.next())
	}
	return out
}

var (
	genders = []selection.GenderChoice{selection.GenderBoth, selection.GenderMen, selection.GenderWomen}
	medals  = []selection.MedalChoice{selection.MedalAll, selection.MedalGold, selection.MedalSilver, selection.MedalBronze}
)

func (g *Generator) next() selection.Criteria {
	c := selection.Criteria{
		Gender: genders[g.rnd.IntN(len(genders))],
		Medal:  medals[g.rnd.IntN(len(medals))],
	}
	c.YearMin, c.YearMax = g.years()
	c.Sports = g.pick(g.catalog.Sports, 3)
	if len(c.Sports) > 0 {
		var events []string
		for _, s := range c.Sports {
			events = append(events, g.catalog.Events[s]...)
		}
		c.Events = g.pick(events, 2)
	}
	return c
}

// years draws a range on the slider grid. One in eight ranges is reversed or
// runs past the bounds so the server has to clamp it.
func (g *Generator) years() (int, int) {
	b, step := g.catalog.Years, max(g.catalog.Step, 1)
	slots := (b.Max-b.Min)/step + 1
	lo := b.Min + g.rnd.IntN(slots)*step
	hi := b.Min + g.rnd.IntN(slots)*step
	if lo > hi {
		lo, hi = hi, lo
	}
	switch g.rnd.IntN(16) {
	case 0:
		return hi, lo
	case 1:
		return b.Min - step*4, b.Max + step*4
	}
	return lo, hi
}

// pick returns up to n distinct values, or none half of the time.
func (g *Generator) pick(values []string, n int) []string {
	if len(values) == 0 || g.rnd.IntN(2) == 0 {
		return nil
	}
	k := 1 + g.rnd.IntN(min(n, len(values)))
	out := make([]string, 0, k)
	for _, i := range g.rnd.Perm(len(values))[:k] {
		if !slices.Contains(out, values[i]) {
			out = append(out, values[i])
		}
	}
	return out
}
