package imagetools

import (
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"os"
	"path/filepath"
	"strings"
	"vincit.fi/geometry/common/logger"
)

var options = &jpeg.DecoderOptions{}

var supportedFileEndings = map[string]bool{".jpg": true, ".jpeg": true}

func IsSupported(path string) bool {
	return supportedFileEndings[strings.ToLower(filepath.Ext(path))]
}

func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return jpeg.Decode(file, options)
}

// LoadImageScaled decodes the JPEG scaled down near the given bounds and then
// fits the result exactly. Decoding towards the target size instead of
// decoding full size keeps large images cheap to load.
func LoadImageScaled(path string, maxWidth int, maxHeight int) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := jpeg.Decode(file, &jpeg.DecoderOptions{
		ScaleTarget: image.Rect(0, 0, maxWidth, maxHeight),
	})
	if err != nil {
		logger.Error.Print("Could not decode image: "+path, " ", err)
		return nil, err
	}
	return FitToSize(img, maxWidth, maxHeight)
}
