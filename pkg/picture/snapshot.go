package picture

import (
	"bytes"
	"encoding/base64"
	"math"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/jigsaw/pkg/errors"
)

// DefaultSnapshotSize is the longest side of a history snapshot.
const DefaultSnapshotSize = 600

// SnapshotQuality is the JPEG quality of re-encoded snapshots.
const SnapshotQuality = 85

// Snapshot returns a copy of img suitable for the recent-image history.
// Images whose sides are both within maxSide are returned unchanged;
// larger ones are scaled so the longest side equals maxSide and re-encoded
// as JPEG.
func Snapshot(img *Image, maxSide int) (*Image, error) {
	if maxSide <= 0 {
		maxSide = DefaultSnapshotSize
	}
	size := img.Size()
	if size.W <= maxSide && size.H <= maxSide {
		return img, nil
	}

	scale := float64(maxSide) / float64(max(size.W, size.H))
	w := max(1, int(math.Round(float64(size.W)*scale)))
	h := max(1, int(math.Round(float64(size.H)*scale)))
	resized := imaging.Resize(img.Decoded, w, h, imaging.Linear)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(SnapshotQuality)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot")
	}
	return &Image{Data: buf.Bytes(), MIME: "image/jpeg", Decoded: resized}, nil
}

// DataURL encodes img as a base64 data URL.
func DataURL(img *Image) string {
	return "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// ParseDataURL decodes a base64 data URL produced by DataURL. The declared
// type is ignored; the payload is sniffed like any other source.
func ParseDataURL(url string) (*Image, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidImage, "not a data URL")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return nil, errors.New(errors.ErrCodeInvalidImage, "data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "decode data URL")
	}
	return Decode(data)
}
