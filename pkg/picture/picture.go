package picture

import (
	"bytes"
	"image"
	"io"
	"os"
	"slices"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/layout"
)

// Accepted lists the MIME types a source image may have.
var Accepted = []string{"image/png", "image/jpeg", "image/jpg"}

// MaxFileSize bounds how much of a source is read.
const MaxFileSize = 64 << 20

// Image is a decoded source image together with its encoded bytes.
type Image struct {
	Data    []byte
	MIME    string
	Decoded image.Image
}

// Size returns the pixel dimensions of the decoded image.
func (img *Image) Size() layout.Size {
	b := img.Decoded.Bounds()
	return layout.Size{W: b.Dx(), H: b.Dy()}
}

// IsAccepted reports whether mime is one of the accepted types.
func IsAccepted(mime string) bool { return slices.Contains(Accepted, mime) }

// Load reads r fully, sniffs its content type and decodes it.
func Load(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "read image")
	}
	if len(data) > MaxFileSize {
		return nil, errors.New(errors.ErrCodeInvalidImage, "image larger than %d bytes", MaxFileSize)
	}
	return Decode(data)
}

// LoadFile loads the image at path.
func LoadFile(path string) (*Image, error) {
	if err := errors.ValidateImagePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "image %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "open %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Decode sniffs and decodes encoded image bytes.
func Decode(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidImage, "empty image")
	}
	mime := mimetype.Detect(data)
	if !IsAccepted(mime.String()) {
		return nil, errors.New(errors.ErrCodeUnsupportedType, "unsupported image type %s", mime.String())
	}

	decoded, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecodeFailed, err, "decode %s", mime.String())
	}
	if b := decoded.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidImage, "image has no pixels")
	}
	return &Image{Data: data, MIME: mime.String(), Decoded: decoded}, nil
}
