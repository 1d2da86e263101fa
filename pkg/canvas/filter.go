package canvas

import (
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"image"
)

// smoothMore is a 5x5 low-pass kernel weighted heavily toward the center
// pixel. It sums to 100.
var smoothMore = [25]float64{
	1, 1, 1, 1, 1,
	1, 5, 5, 5, 1,
	1, 5, 44, 5, 1,
	1, 5, 5, 5, 1,
	1, 1, 1, 1, 1,
}

// smoothMoreReach is how far the kernel extends from its center.
const smoothMoreReach = 2

// Smooth blurs img slightly with the smoothMore kernel. Pixels closer to an
// edge than the kernel reaches are copied through unfiltered. The result's
// origin is (0, 0).
func Smooth(img image.Image) *image.NRGBA {
	smoothed := imaging.Convolve5x5(img, smoothMore, &imaging.ConvolveOptions{Normalize: true})

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	r := smoothMoreReach
	edges := []image.Rectangle{
		image.Rect(0, 0, w, r),
		image.Rect(0, h-r, w, h),
		image.Rect(0, 0, r, h),
		image.Rect(w-r, 0, w, h),
	}
	for _, edge := range edges {
		edge = edge.Intersect(smoothed.Bounds())
		draw.Draw(smoothed, edge, img, b.Min.Add(edge.Min), draw.Src)
	}

	return smoothed
}
