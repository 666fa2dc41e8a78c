package thumbnail

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// ExifInfo holds the EXIF fields the gallery shows or needs for rendering
type ExifInfo struct {
	Orientation int
	Taken       time.Time
	Camera      string
	Width       int
	Height      int
}

const exifUnchangedOrientation = 1

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

// DefaultExifInfo is used for files without readable EXIF data
func DefaultExifInfo() *ExifInfo {
	return &ExifInfo{Orientation: exifUnchangedOrientation}
}

// LoadExif decodes EXIF data from the file at path. Files without EXIF (PNG,
// stripped JPEG) return an error together with DefaultExifInfo.
func LoadExif(path string) (*ExifInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return DefaultExifInfo(), err
	}
	defer file.Close()

	decoded, err := exif.Decode(file)
	if err != nil {
		return DefaultExifInfo(), fmt.Errorf("decode exif %s: %w", path, err)
	}

	info := DefaultExifInfo()
	if orientation, err := getInt(decoded, exif.Orientation); err == nil && orientation >= 1 && orientation <= 8 {
		info.Orientation = orientation
	}
	if taken, err := decoded.DateTime(); err == nil {
		info.Taken = taken
	}
	if width, err := getInt(decoded, exif.PixelXDimension); err == nil {
		info.Width = width
	}
	if height, err := getInt(decoded, exif.PixelYDimension); err == nil {
		info.Height = height
	}
	info.Camera = cameraName(decoded)
	return info, nil
}

// OrientationToAngleAndFlip maps an EXIF orientation to a counter-clockwise
// rotation in degrees followed by an optional horizontal flip
func OrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func getInt(decoded *exif.Exif, name exif.FieldName) (int, error) {
	tag, err := decoded.Get(name)
	if err != nil {
		return 0, err
	}
	return tag.Int(0)
}

func getString(decoded *exif.Exif, name exif.FieldName) string {
	tag, err := decoded.Get(name)
	if err != nil {
		return ""
	}
	value, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.Trim(value, "\x00"))
}

func cameraName(decoded *exif.Exif) string {
	maker := getString(decoded, exif.Make)
	model := getString(decoded, exif.Model)
	switch {
	case maker == "":
		return model
	case model == "":
		return maker
	case strings.HasPrefix(model, maker):
		return model
	default:
		return maker + " " + model
	}
}
