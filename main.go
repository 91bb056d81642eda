package main

import (
	"github.com/disintegration/imaging"
	"image"
	"vincit.fi/geometry/common/logger"
	"vincit.fi/geometry/common/util"
	"vincit.fi/geometry/imagetools"
)

func main() {
	params := util.GetAppParams()

	logLevel, err := logger.ParseLogLevel(params.LogLevel)
	if err != nil {
		logLevel = logger.INFO
	}
	logger.Initialize(logLevel)

	if params.InputPath == "" || params.OutputPath == "" {
		logger.Error.Fatal("Usage: geometry [options] <input> <output>")
	}

	if size, err := imagetools.ImageSize(params.InputPath); err == nil {
		logger.Debug.Printf("Source size from Exif: %s", size.String())
	}

	var img image.Image
	if imagetools.IsSupported(params.InputPath) {
		img, err = imagetools.LoadImageScaled(params.InputPath, params.MaxWidth, params.MaxHeight)
	} else {
		img, err = imaging.Open(params.InputPath)
		if err == nil {
			img, err = imagetools.FitToSize(img, params.MaxWidth, params.MaxHeight)
		}
	}
	if err != nil {
		logger.Error.Fatalf("Could not load '%s': %s", params.InputPath, err)
	}

	if params.Thumbnail {
		if img, err = imagetools.Thumbnail(img); err != nil {
			logger.Error.Fatalf("Could not create thumbnail: %s", err)
		}
	}

	if err := imaging.Save(img, params.OutputPath); err != nil {
		logger.Error.Fatalf("Could not save '%s': %s", params.OutputPath, err)
	}
	logger.Info.Printf("Wrote %dx%d image to %s", img.Bounds().Dx(), img.Bounds().Dy(), params.OutputPath)
}
