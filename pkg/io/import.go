package io

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/displaypicture/pkg/errors"
)

// ReadImage decodes an image from r, applying EXIF orientation.
// ReadImage does not close r.
func ReadImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode image")
	}
	if img.Bounds().Empty() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "image is empty")
	}
	return img, nil
}

// LoadImage reads an image file from path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	img, err := ReadImage(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	return img, nil
}
