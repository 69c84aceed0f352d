package pattern

import (
	"testing"

	"lifepad/pkg/life"
)

func TestGetIsCaseInsensitive(t *testing.T) {
	lower, ok := Get("glider")
	if !ok {
		t.Fatal("glider not found")
	}
	upper, ok := Get("GLIDER")
	if !ok {
		t.Fatal("GLIDER not found")
	}
	if lower.Name != upper.Name {
		t.Fatalf("lookups disagree: %q vs %q", lower.Name, upper.Name)
	}
	if _, ok := Get("no-such-shape"); ok {
		t.Fatal("lookup of unknown name succeeded")
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no built-in patterns")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names out of order: %q before %q", names[i-1], names[i])
		}
	}
	for _, want := range []string{"block", "blinker", "glider", "pulsar"} {
		if _, ok := Get(want); !ok {
			t.Fatalf("expected built-in %q missing", want)
		}
	}
}

func TestGliderShape(t *testing.T) {
	p, _ := Get("glider")
	w, h := p.Size()
	if w != 3 || h != 3 {
		t.Fatalf("glider size = %dx%d, expected 3x3", w, h)
	}
	want := []life.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	got := p.Cells()
	if len(got) != len(want) {
		t.Fatalf("glider has %d cells, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestEveryBuiltinHasCells(t *testing.T) {
	for _, name := range Names() {
		p, ok := Get(name)
		if !ok {
			t.Fatalf("Names lists %q but Get cannot find it", name)
		}
		if len(p.Cells()) == 0 {
			t.Fatalf("pattern %q has no alive cells", name)
		}
		w, h := p.Size()
		if w == 0 || h == 0 {
			t.Fatalf("pattern %q has empty bounding box", name)
		}
	}
}

func TestStampOffsetsCells(t *testing.T) {
	s := life.NewSimulation(8, 8)
	p, _ := Get("block")
	p.Stamp(s, 3, 4)

	want := map[life.Cell]bool{
		{X: 3, Y: 4}: true,
		{X: 4, Y: 4}: true,
		{X: 3, Y: 5}: true,
		{X: 4, Y: 5}: true,
	}
	got := s.AliveCells()
	if len(got) != len(want) {
		t.Fatalf("stamp produced %d cells, expected %d", len(got), len(want))
	}
	for _, c := range got {
		if !want[c] {
			t.Fatalf("unexpected alive cell %+v", c)
		}
	}
}

func TestStampClipsAtEdges(t *testing.T) {
	s := life.NewSimulation(3, 3)
	p, _ := Get("glider")
	p.Stamp(s, -1, -1)

	want := map[life.Cell]bool{
		{X: 1, Y: 0}: true,
		{X: 0, Y: 1}: true,
		{X: 1, Y: 1}: true,
	}
	got := s.AliveCells()
	if len(got) != len(want) {
		t.Fatalf("clipped stamp produced %d cells, expected %d", len(got), len(want))
	}
	for _, c := range got {
		if !want[c] {
			t.Fatalf("unexpected alive cell %+v after clipping", c)
		}
	}
}

func TestStampLeavesDeadCellsAlone(t *testing.T) {
	s := life.NewSimulation(4, 4)
	s.SetCell(0, 0, true)
	p, _ := Get("glider")
	p.Stamp(s, 0, 0)
	if !s.IsAlive(0, 0) {
		t.Fatal("stamp erased a cell under a dead pattern position")
	}
}

func TestStringRendersFixedWidth(t *testing.T) {
	p, _ := Get("toad")
	want := ".###\n###."
	if got := p.String(); got != want {
		t.Fatalf("toad rendered as:\n%s\nexpected:\n%s", got, want)
	}
}

func TestStampedBlinkerOscillates(t *testing.T) {
	s := life.NewSimulation(5, 5)
	p, _ := Get("blinker")
	p.Stamp(s, 1, 2)

	s.Step()
	for _, c := range []life.Cell{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}} {
		if !s.IsAlive(c.X, c.Y) {
			t.Fatalf("cell %+v dead after one step", c)
		}
	}
	if s.Population() != 3 {
		t.Fatalf("population = %d, expected 3", s.Population())
	}
}
