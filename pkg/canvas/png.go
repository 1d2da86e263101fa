package canvas

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG encodes img as a PNG file at path, replacing any existing file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	err = png.Encode(f, img)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}
