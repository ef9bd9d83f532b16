package render

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// WebP sources are common for camera snapshots; the imaging library
	// registers PNG/JPEG/GIF/BMP/TIFF itself.
	_ "golang.org/x/image/webp"
)

// DecodeError means the fetched bytes are not a recognized image format
type DecodeError struct {
	ByteSize int
	Err      error
}

// Error returns the error message
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %d bytes: %v", e.ByteSize, e.Err)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode sniffs the format of data and decodes it into an image. Format
// detection is delegated entirely to the registered codecs, not
// reimplemented here.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{ByteSize: len(data), Err: err}
	}
	return img, nil
}
