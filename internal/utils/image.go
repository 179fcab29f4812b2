package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// ResizeImage decodes the upload and scales it down to fit within the given
// bounds while keeping the aspect ratio. Images already within bounds pass
// through untouched.
func ResizeImage(reader io.Reader, filename string, maxWidth, maxHeight uint) (image.Image, error) {
	img, err := decodeImage(reader, filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width <= maxWidth && height <= maxHeight {
		return img, nil
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	var newWidth, newHeight uint
	if widthRatio < heightRatio {
		newWidth = maxWidth
		newHeight = uint(float64(height) * widthRatio)
	} else {
		newWidth = uint(float64(width) * heightRatio)
		newHeight = maxHeight
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3), nil
}

// ResizeImageToBytes resizes and re-encodes in one step for storage uploads.
func ResizeImageToBytes(reader io.Reader, filename string, maxWidth, maxHeight uint) ([]byte, string, error) {
	img, err := ResizeImage(reader, filename, maxWidth, maxHeight)
	if err != nil {
		return nil, "", err
	}

	format := "jpeg"
	contentType := "image/jpeg"
	if strings.ToLower(filepath.Ext(filename)) == ".png" {
		format = "png"
		contentType = "image/png"
	}

	var buf bytes.Buffer
	if err := EncodeImage(img, format, &buf, 85); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), contentType, nil
}

func decodeImage(reader io.Reader, filename string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(reader)
	case ".png":
		return png.Decode(reader)
	default:
		img, _, err := image.Decode(reader)
		return img, err
	}
}

func EncodeImage(img image.Image, format string, writer io.Writer, quality int) error {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return jpeg.Encode(writer, img, &jpeg.Options{Quality: quality})
	case "png":
		return png.Encode(writer, img)
	default:
		return errors.New("unsupported image format")
	}
}

func IsValidImageFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range []string{".jpg", ".jpeg", ".png"} {
		if ext == format {
			return true
		}
	}
	return false
}
