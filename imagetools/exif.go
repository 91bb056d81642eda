package imagetools

import (
	"github.com/rwcarlsen/goexif/exif"
	"os"
	"vincit.fi/geometry/common/logger"
	"vincit.fi/geometry/geom"
)

// ImageSize reads the pixel dimensions of an image file from its Exif data
// without decoding the image itself. Orientations 5-8 store the image
// rotated a quarter turn, so the width and height are swapped to match what
// the viewer sees.
func ImageSize(path string) (geom.Dimension, error) {
	file, err := os.Open(path)
	if err != nil {
		return geom.ZeroDimension, err
	}
	defer file.Close()

	decodedExif, err := exif.Decode(file)
	if err != nil {
		logger.Error.Print("Could not decode Exif data ", err)
		return geom.ZeroDimension, err
	}

	width, err := tagInt(decodedExif, exif.PixelXDimension)
	if err != nil {
		return geom.ZeroDimension, err
	}
	height, err := tagInt(decodedExif, exif.PixelYDimension)
	if err != nil {
		return geom.ZeroDimension, err
	}

	if orientation, err := tagInt(decodedExif, exif.Orientation); err == nil && orientation >= 5 {
		width, height = height, width
	}
	return geom.DimensionOf(float64(width), float64(height)), nil
}

func tagInt(decodedExif *exif.Exif, name exif.FieldName) (int, error) {
	tag, err := decodedExif.Get(name)
	if err != nil {
		return 0, err
	}
	return tag.Int(0)
}
