package thumbnail

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// LoadOriented decodes the image at path and applies its EXIF orientation
func LoadOriented(path string) (image.Image, *ExifInfo, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open image %s: %w", path, err)
	}

	info, exifErr := LoadExif(path)
	if exifErr != nil {
		info = DefaultExifInfo()
	}

	angle, flipped := OrientationToAngleAndFlip(info.Orientation)
	img = Orient(img, angle, flipped)

	bounds := img.Bounds()
	info.Width = bounds.Dx()
	info.Height = bounds.Dy()
	return img, info, nil
}

// Orient rotates img counter-clockwise by angle degrees and then flips it
// horizontally when flipped is set
func Orient(img image.Image, angle float64, flipped bool) image.Image {
	if angle != noRotate {
		img = imaging.Rotate(img, angle, color.Black)
	}
	if flipped {
		img = imaging.FlipH(img)
	}
	return img
}

// Square crops img around its center and scales it to size x size
func Square(img image.Image, size int) image.Image {
	return imaging.Fill(img, size, size, imaging.Center, imaging.Linear)
}

// Fit scales img down to fit inside maxWidth x maxHeight. Smaller images are
// returned unchanged.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}
