package pdfimage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

var ErrUnsupportedImage = errors.New("unsupported image")

type Image struct {
	// Original file name of the upload, only used for error messages
	Name string
	Data []byte
}

func NewImage(name string, data []byte) Image {
	return Image{Name: name, Data: data}
}

// Read only the image header and return its pixel dimensions and format name ("jpeg" or "png").
func DecodeImageDimensions(data []byte) (ImageDimensions, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageDimensions{}, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	if format != "jpeg" && format != "png" {
		return ImageDimensions{}, "", fmt.Errorf("%w: format %s", ErrUnsupportedImage, format)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ImageDimensions{}, "", fmt.Errorf("%w: image has no pixels", ErrUnsupportedImage)
	}

	return ImageDimensions{
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	}, format, nil
}

func (img Image) Dimensions() (ImageDimensions, error) {
	dims, _, err := DecodeImageDimensions(img.Data)
	if err != nil {
		return ImageDimensions{}, fmt.Errorf("image %q: %w", img.Name, err)
	}
	return dims, nil
}
