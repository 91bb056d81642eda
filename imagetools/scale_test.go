package imagetools

import (
	"github.com/stretchr/testify/assert"
	"image"
	"testing"
	"vincit.fi/geometry/geom"
)

func TestScaleToFit(t *testing.T) {
	a := assert.New(t)
	type args struct {
		sourceWidth  int
		sourceHeight int
		targetWidth  int
		targetHeight int
	}
	tests := []struct {
		name   string
		args   args
		width  int
		height int
	}{
		{name: "100x100->100x100", args: args{sourceWidth: 100, sourceHeight: 100, targetWidth: 100, targetHeight: 100}, width: 100, height: 100},
		// Downscale
		{name: "200x200->100x100", args: args{sourceWidth: 200, sourceHeight: 200, targetWidth: 100, targetHeight: 100}, width: 100, height: 100},
		{name: "400x300->100x100", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 100, targetHeight: 100}, width: 100, height: 75},
		{name: "400x300->100x50", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 100, targetHeight: 50}, width: 66, height: 50},
		{name: "300x400->100x100", args: args{sourceWidth: 300, sourceHeight: 400, targetWidth: 100, targetHeight: 100}, width: 75, height: 100},
		{name: "300x400->100x50", args: args{sourceWidth: 300, sourceHeight: 400, targetWidth: 100, targetHeight: 50}, width: 37, height: 50},
		// Never upscaled
		{name: "100x100->200x200", args: args{sourceWidth: 100, sourceHeight: 100, targetWidth: 200, targetHeight: 200}, width: 100, height: 100},
		{name: "40x30  ->400x400", args: args{sourceWidth: 40, sourceHeight: 30, targetWidth: 400, targetHeight: 400}, width: 40, height: 30},
		// Degenerate targets collapse
		{name: "400x300->0x100", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 0, targetHeight: 100}, width: 0, height: 0},
		{name: "400x300->100x0", args: args{sourceWidth: 400, sourceHeight: 300, targetWidth: 100, targetHeight: 0}, width: 0, height: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ScaleToFit(tt.args.sourceWidth, tt.args.sourceHeight, tt.args.targetWidth, tt.args.targetHeight)
			a.Nil(err)
			a.Equal(tt.width, w)
			a.Equal(tt.height, h)
		})
	}
}

func TestScaleToFit_InvalidSource(t *testing.T) {
	a := assert.New(t)

	_, _, err := ScaleToFit(0, 100, 50, 50)
	a.NotNil(err)
	a.ErrorIs(err, geom.ErrInvalidArgument)

	_, _, err = ScaleToFit(100, 0, 50, 50)
	a.NotNil(err)
	a.ErrorIs(err, geom.ErrInvalidArgument)
}

func TestFitToSize(t *testing.T) {
	a := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))

	fitted, err := FitToSize(img, 100, 100)
	a.Nil(err)
	a.Equal(100, fitted.Bounds().Dx())
	a.Equal(75, fitted.Bounds().Dy())
}

func TestFitToSize_AlreadyFitting(t *testing.T) {
	a := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 80, 60))

	fitted, err := FitToSize(img, 100, 100)
	a.Nil(err)
	a.Equal(image.Image(img), fitted)
}

func TestFitToSize_ZeroBound(t *testing.T) {
	a := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))

	fitted, err := FitToSize(img, 0, 100)
	a.Nil(err)
	a.Equal(0, fitted.Bounds().Dx())
	a.Equal(0, fitted.Bounds().Dy())
}

func TestFitToSize_InvalidSource(t *testing.T) {
	a := assert.New(t)

	img := image.NewRGBA(image.Rectangle{})

	_, err := FitToSize(img, 100, 100)
	a.NotNil(err)
	a.ErrorIs(err, geom.ErrInvalidArgument)
}

func TestThumbnail(t *testing.T) {
	a := assert.New(t)

	landscape := image.NewRGBA(image.Rect(0, 0, 400, 300))
	thumbnail, err := Thumbnail(landscape)
	a.Nil(err)
	a.Equal(100, thumbnail.Bounds().Dx())
	a.Equal(75, thumbnail.Bounds().Dy())

	portrait := image.NewRGBA(image.Rect(0, 0, 300, 400))
	thumbnail, err = Thumbnail(portrait)
	a.Nil(err)
	a.Equal(75, thumbnail.Bounds().Dx())
	a.Equal(100, thumbnail.Bounds().Dy())

	small := image.NewRGBA(image.Rect(0, 0, 50, 40))
	thumbnail, err = Thumbnail(small)
	a.Nil(err)
	a.Equal(image.Image(small), thumbnail)
}

func TestIsSupported(t *testing.T) {
	a := assert.New(t)

	a.True(IsSupported("photo.jpg"))
	a.True(IsSupported("photo.JPEG"))
	a.False(IsSupported("photo.png"))
	a.False(IsSupported("photo"))
}
