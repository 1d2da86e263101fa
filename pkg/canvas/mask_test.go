package canvas

import (
	"github.com/willbeason/fractal-gallery/pkg/geometry"
	"image"
	"testing"
)

func TestMask_DrawSegment(t *testing.T) {
	tcs := []struct {
		name string
		s    geometry.Segment
		want []image.Point
	}{
		{
			name: "single point",
			s:    geometry.Segment{From: geometry.XY{X: 3, Y: 3}, To: geometry.XY{X: 3, Y: 3}},
			want: []image.Point{{3, 3}},
		},
		{
			name: "vertical upward",
			s:    geometry.Segment{From: geometry.XY{X: 2, Y: 5}, To: geometry.XY{X: 2, Y: 2}},
			want: []image.Point{{2, 2}, {2, 3}, {2, 4}, {2, 5}},
		},
		{
			name: "horizontal",
			s:    geometry.Segment{From: geometry.XY{X: 1, Y: 0}, To: geometry.XY{X: 4, Y: 0}},
			want: []image.Point{{1, 0}, {2, 0}, {3, 0}, {4, 0}},
		},
		{
			name: "diagonal",
			s:    geometry.Segment{From: geometry.XY{X: 4, Y: 0}, To: geometry.XY{X: 0, Y: 4}},
			want: []image.Point{{4, 0}, {3, 1}, {2, 2}, {1, 3}, {0, 4}},
		},
		{
			name: "shallow",
			s:    geometry.Segment{From: geometry.XY{X: 0, Y: 0}, To: geometry.XY{X: 4, Y: 2}},
			want: []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMask(8, 8)
			m.DrawSegment(tc.s)

			if got := m.Count(); got != len(tc.want) {
				t.Errorf("got %d marked pixels, want %d", got, len(tc.want))
			}
			for _, p := range tc.want {
				if !m.Marked(p.X, p.Y) {
					t.Errorf("pixel %v not marked", p)
				}
			}
		})
	}
}

func TestMask_ClipsOutside(t *testing.T) {
	m := NewMask(4, 4)
	m.DrawSegment(geometry.Segment{From: geometry.XY{X: -3, Y: 1}, To: geometry.XY{X: 6, Y: 1}})

	if got := m.Count(); got != 4 {
		t.Errorf("got %d marked pixels, want 4", got)
	}
	if m.Marked(-1, 1) || m.Marked(4, 1) {
		t.Error("pixels outside the mask reported as marked")
	}
}
