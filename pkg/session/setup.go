package session

import (
	"context"
	"io"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/i18n"
	"github.com/matzehuels/jigsaw/pkg/layout"
	"github.com/matzehuels/jigsaw/pkg/picture"
)

// LoadImage reads and decodes an image from r. On failure the session is
// unchanged.
func (s *Session) LoadImage(ctx context.Context, r io.Reader) error {
	img, err := picture.Load(r)
	if err != nil {
		return err
	}
	s.setImage(img, "")
	return nil
}

// LoadFile loads the image at path.
func (s *Session) LoadFile(ctx context.Context, path string) error {
	img, err := picture.LoadFile(path)
	if err != nil {
		return err
	}
	s.setImage(img, path)
	return nil
}

// LoadHistory loads history entry n, counting from one.
func (s *Session) LoadHistory(ctx context.Context, n int) error {
	entry, err := s.history.Get(ctx, n)
	if err != nil {
		return err
	}
	img, err := picture.ParseDataURL(entry)
	if err != nil {
		return err
	}
	s.setImage(img, s.localizer.T(ctx, "savedN", i18n.Params{"n": n}))
	return nil
}

// SetImage selects an image that was already decoded.
func (s *Session) SetImage(img *picture.Image, label string) error {
	if img == nil || img.Decoded == nil {
		return errors.New(errors.ErrCodeInvalidImage, "image is not decoded")
	}
	s.setImage(img, label)
	return nil
}

func (s *Session) setImage(img *picture.Image, label string) {
	s.image = img
	s.label = label
	s.log().Debug("image loaded", "type", img.MIME, "size", img.Size(), "label", label)
}

// SetGrid selects the grid of the next generated puzzle.
func (s *Session) SetGrid(g layout.Grid) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.grid = g
	return nil
}

// SetGridString parses and selects a grid. Each unusable value falls back
// to the matching side of layout.FallbackGrid and the parse error is
// returned.
func (s *Session) SetGridString(v string) error {
	g, err := layout.ParseGridFallback(v)
	s.grid = g
	return err
}

// Reset returns to the setup step with no image loaded. The grid selection
// is kept.
func (s *Session) Reset() {
	s.step = StepSetup
	s.image = nil
	s.label = ""
	s.layout = nil
	s.board = nil
	s.pieces = nil
}

// requireImage reports a missing image.
func (s *Session) requireImage() error {
	if s.image == nil {
		return errors.New(errors.ErrCodeNoImage, "no image loaded")
	}
	return nil
}
