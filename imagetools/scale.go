package imagetools

import (
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"image"
	"vincit.fi/geometry/geom"
)

const (
	thumbnailWidth  = 100
	thumbnailHeight = thumbnailWidth
)

// ScaleToFit resolves the pixel size of the source scaled down to fit the
// target bounds with its aspect ratio preserved. A source that already fits
// is returned as is. Snapping to whole pixels happens here, at the boundary
// where the resize libraries need integers.
func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int, error) {
	scaled, err := geom.DimensionOf(float64(sourceWidth), float64(sourceHeight)).
		ConstrainedBy(float64(targetWidth), float64(targetHeight))
	if err != nil {
		return 0, 0, err
	}
	return int(scaled.Width()), int(scaled.Height()), nil
}

// FitToSize scales the image down so that it fits within the given bounds.
// An image that already fits is returned unchanged.
func FitToSize(img image.Image, maxWidth int, maxHeight int) (image.Image, error) {
	bounds := img.Bounds()
	width, height, err := ScaleToFit(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	if err != nil {
		return nil, err
	}
	if width == bounds.Dx() && height == bounds.Dy() {
		return img, nil
	}
	if width == 0 || height == 0 {
		return image.NewNRGBA(image.Rectangle{}), nil
	}
	return imaging.Resize(img, width, height, imaging.Linear), nil
}

// Thumbnail scales the image down to fit the thumbnail box.
func Thumbnail(img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	width, height, err := ScaleToFit(bounds.Dx(), bounds.Dy(), thumbnailWidth, thumbnailHeight)
	if err != nil {
		return nil, err
	}
	if width == bounds.Dx() && height == bounds.Dy() {
		return img, nil
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3), nil
}
