package tree

import (
	"github.com/willbeason/fractal-gallery/pkg/geometry"
	"testing"
)

func count(g Generator, trunks ...Branch) (segments, leaves int) {
	for _, b := range trunks {
		g.Grow(b, func(b Branch, _ geometry.Segment) {
			segments++
			if b.Remaining == 1 {
				leaves++
			}
		})
	}
	return segments, leaves
}

func TestGenerator_SegmentCounts(t *testing.T) {
	g := ForWidth(512)
	center := geometry.XY{X: 256, Y: 256}

	for layers := 0; layers <= 15; layers++ {
		segments, leaves := count(g, Branch{Origin: center, Angle: Up, Remaining: layers})
		if want := 1<<layers - 1; segments != want {
			t.Errorf("layers %d: got %d segments from one trunk, want %d", layers, segments, want)
		}
		if layers > 0 {
			if want := 1 << (layers - 1); leaves != want {
				t.Errorf("layers %d: got %d leaf segments from one trunk, want %d", layers, leaves, want)
			}
		}

		segments, leaves = count(g, Symmetric(center, layers)...)
		if want := 1<<(layers+1) - 2; segments != want {
			t.Errorf("layers %d: got %d segments from symmetric tree, want %d", layers, segments, want)
		}
		if layers > 0 {
			if want := 1 << layers; leaves != want {
				t.Errorf("layers %d: got %d leaf segments from symmetric tree, want %d", layers, leaves, want)
			}
		}
	}
}

type recorder []geometry.Segment

func (r *recorder) DrawSegment(s geometry.Segment) {
	*r = append(*r, s)
}

func TestGenerator_LeafDrawsNothing(t *testing.T) {
	g := ForWidth(512)
	var drawn recorder
	g.Draw(Branch{Origin: geometry.XY{X: 10, Y: 10}, Angle: Up}, &drawn)

	if len(drawn) != 0 {
		t.Errorf("got %d segments, want 0", len(drawn))
	}
}

func TestGenerator_DrawOrder(t *testing.T) {
	g := ForWidth(512)
	var drawn recorder
	g.Draw(Branch{Origin: geometry.XY{X: 256, Y: 256}, Angle: Up, Remaining: 2}, &drawn)

	if len(drawn) != 3 {
		t.Fatalf("got %d segments, want 3", len(drawn))
	}
	trunkEnd := geometry.XY{X: 256, Y: 252}
	if drawn[0].To != trunkEnd {
		t.Errorf("got trunk ending at %+v, want %+v", drawn[0].To, trunkEnd)
	}
	// cos(111) * 2 = -0.72 and cos(69) * 2 = 0.72 both truncate to zero.
	if want := (geometry.XY{X: 256, Y: 251}); drawn[1].From != trunkEnd || drawn[1].To != want {
		t.Errorf("got left branch %+v, want %+v to %+v", drawn[1], trunkEnd, want)
	}
	if want := (geometry.XY{X: 256, Y: 251}); drawn[2].From != trunkEnd || drawn[2].To != want {
		t.Errorf("got right branch %+v, want %+v to %+v", drawn[2], trunkEnd, want)
	}
}

func TestGenerator_End(t *testing.T) {
	g := ForWidth(512)
	origin := geometry.XY{X: 256, Y: 256}

	tcs := []struct {
		name string
		b    Branch
		want geometry.XY
	}{
		{name: "up", b: Branch{Origin: origin, Angle: Up, Remaining: 15}, want: geometry.XY{X: 256, Y: 226}},
		{name: "down", b: Branch{Origin: origin, Angle: Down, Remaining: 15}, want: geometry.XY{X: 256, Y: 286}},
		{name: "right", b: Branch{Origin: origin, Angle: 0, Remaining: 3}, want: geometry.XY{X: 262, Y: 256}},
		// cos(111) * 28 = -10.03 and sin(111) * 28 = 26.14, both truncated toward zero.
		{name: "truncated", b: Branch{Origin: origin, Angle: 111, Remaining: 14}, want: geometry.XY{X: 246, Y: 230}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := g.End(tc.b)
			if got != tc.want {
				t.Errorf("got End() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestGenerator_Children(t *testing.T) {
	g := ForWidth(512)
	left, right := g.Children(Branch{Origin: geometry.XY{X: 100, Y: 100}, Angle: Up, Remaining: 4})

	wantOrigin := geometry.XY{X: 100, Y: 92}
	if left.Origin != wantOrigin || right.Origin != wantOrigin {
		t.Errorf("got children at %+v and %+v, want %+v", left.Origin, right.Origin, wantOrigin)
	}
	if left.Angle != Up+SpreadAngle || right.Angle != Up-SpreadAngle {
		t.Errorf("got child angles %v and %v, want %v and %v", left.Angle, right.Angle, Up+SpreadAngle, Up-SpreadAngle)
	}
	if left.Remaining != 3 || right.Remaining != 3 {
		t.Errorf("got child layers %d and %d, want 3", left.Remaining, right.Remaining)
	}
}
