package render

import (
	"fmt"
	"github.com/willbeason/fractal-gallery/pkg/canvas"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// An Image is one picture of the gallery.
type Image struct {
	// Name identifies the image on the command line.
	Name string
	// File is the name the image is saved under.
	File string

	Render func(Config) (*image.NRGBA, error)
}

// Gallery returns the images in the order they are rendered.
func Gallery() []Image {
	return []Image{
		{Name: "checkerboard", File: "fractalfinal1.png", Render: Checkerboard},
		{Name: "radial", File: "fractalfinal2.png", Render: Radial},
		{Name: "tree", File: "fractalfinal3.png", Render: Rings},
	}
}

// Names returns the names of images.
func Names(images []Image) []string {
	names := make([]string, len(images))
	for i, im := range images {
		names[i] = im.Name
	}
	return names
}

// Select returns the images whose names are listed, in gallery order. An
// empty list selects every image.
func Select(images []Image, names []string) ([]Image, error) {
	if len(names) == 0 {
		return images, nil
	}

	known := Names(images)
	for _, name := range names {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("unknown image %q, want one of %s", name, strings.Join(known, ", "))
		}
	}

	var selected []Image
	for _, im := range images {
		if slices.Contains(names, im.Name) {
			selected = append(selected, im)
		}
	}
	return selected, nil
}

// Write renders each image in turn and saves it into dir, creating dir if
// needed. It stops at the first image that cannot be saved.
func Write(cfg Config, dir string, images []Image) error {
	err := cfg.Validate()
	if err != nil {
		return err
	}

	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	log := cfg.logger()
	for _, im := range images {
		start := time.Now()
		log.Info("rendering", "image", im.Name, "width", cfg.Width, "height", cfg.Height)

		img, err := im.Render(cfg)
		if err != nil {
			return fmt.Errorf("rendering %s image: %w", im.Name, err)
		}

		path := filepath.Join(dir, im.File)
		err = canvas.SavePNG(path, img)
		if err != nil {
			return fmt.Errorf("writing %s image: %w", im.Name, err)
		}

		log.Info("wrote", "image", im.Name, "path", path,
			"bounds", img.Bounds().String(), "elapsed", time.Since(start))
	}

	return nil
}
