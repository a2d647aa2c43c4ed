package picture

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/layout"
)

// gradient returns a w×h image whose red channel encodes x and green y.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("jpeg.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		mime string
	}{
		{"png", encodePNG(t, gradient(40, 20)), "image/png"},
		{"jpeg", encodeJPEG(t, gradient(40, 20)), "image/jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Load(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if img.MIME != tt.mime {
				t.Errorf("MIME = %q, want %q", img.MIME, tt.mime)
			}
			if got := img.Size(); got != (layout.Size{W: 40, H: 20}) {
				t.Errorf("Size() = %v, want 40x20", got)
			}
			if !bytes.Equal(img.Data, tt.data) {
				t.Error("Data should hold the original bytes")
			}
		})
	}
}

func TestLoadRejects(t *testing.T) {
	var gifBuf bytes.Buffer
	if err := gif.Encode(&gifBuf, gradient(4, 4), nil); err != nil {
		t.Fatalf("gif.Encode: %v", err)
	}
	truncated := encodePNG(t, gradient(40, 20))[:40]

	tests := []struct {
		name string
		data []byte
		code errors.Code
	}{
		{"empty", nil, errors.ErrCodeInvalidImage},
		{"text", []byte("definitely not an image"), errors.ErrCodeUnsupportedType},
		{"gif", gifBuf.Bytes(), errors.ErrCodeUnsupportedType},
		{"truncated png", truncated, errors.ErrCodeDecodeFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
			if !errors.Rejected(err) {
				t.Errorf("Rejected(%v) = false", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	// The extension lies; content decides.
	path := filepath.Join(dir, "photo.gif")
	if err := os.WriteFile(path, encodePNG(t, gradient(8, 8)), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if img.MIME != "image/png" {
		t.Errorf("MIME = %q, want image/png", img.MIME)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.png"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	_, err = LoadFile("  ")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("blank path error = %v, want INVALID_PATH", err)
	}
}

func TestSnapshot(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		maxSide   int
		want      layout.Size
		unchanged bool
	}{
		{"small", 100, 50, 600, layout.Size{W: 100, H: 50}, true},
		{"exact", 600, 600, 600, layout.Size{W: 600, H: 600}, true},
		{"wide", 1200, 600, 600, layout.Size{W: 600, H: 300}, false},
		{"tall", 300, 900, 600, layout.Size{W: 200, H: 600}, false},
		{"rounded", 1000, 333, 600, layout.Size{W: 600, H: 200}, false},
		{"default size", 700, 100, 0, layout.Size{W: 600, H: 86}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Decode(encodePNG(t, gradient(tt.w, tt.h)))
			if err != nil {
				t.Fatal(err)
			}
			snap, err := Snapshot(src, tt.maxSide)
			if err != nil {
				t.Fatalf("Snapshot: %v", err)
			}
			if got := snap.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
			if tt.unchanged {
				if snap != src {
					t.Error("small image should be returned unchanged")
				}
				return
			}
			if snap.MIME != "image/jpeg" {
				t.Errorf("MIME = %q, want image/jpeg", snap.MIME)
			}
			back, err := Decode(snap.Data)
			if err != nil {
				t.Fatalf("snapshot bytes do not decode: %v", err)
			}
			if back.Size() != tt.want {
				t.Errorf("encoded size = %v, want %v", back.Size(), tt.want)
			}
		})
	}
}

func TestDataURL(t *testing.T) {
	src, err := Decode(encodePNG(t, gradient(10, 10)))
	if err != nil {
		t.Fatal(err)
	}
	url := DataURL(src)
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("DataURL() = %q...", url[:min(len(url), 30)])
	}

	back, err := ParseDataURL(url)
	if err != nil {
		t.Fatalf("ParseDataURL: %v", err)
	}
	if !bytes.Equal(back.Data, src.Data) {
		t.Error("data URL did not preserve bytes")
	}

	for _, bad := range []string{"", "http://x/y.png", "data:image/png,raw", "data:image/png;base64,!!!"} {
		if _, err := ParseDataURL(bad); !errors.Is(err, errors.ErrCodeInvalidImage) {
			t.Errorf("ParseDataURL(%q) error = %v, want INVALID_IMAGE", bad, err)
		}
	}
}

func TestSlice(t *testing.T) {
	src, err := Decode(encodePNG(t, gradient(100, 50)))
	if err != nil {
		t.Fatal(err)
	}
	grid := layout.Grid{Rows: 2, Cols: 3}
	pieces := Slice(src, grid)
	cells := layout.SourceCells(src.Size(), grid)

	if len(pieces) != grid.Count() {
		t.Fatalf("len(pieces) = %d, want %d", len(pieces), grid.Count())
	}
	for i, p := range pieces {
		b := p.Bounds()
		if b.Dx() != cells[i].Dx() || b.Dy() != cells[i].Dy() {
			t.Errorf("piece %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), cells[i].Dx(), cells[i].Dy())
		}
		r, g, _, _ := p.At(b.Min.X, b.Min.Y).RGBA()
		if int(r>>8) != cells[i].Min.X || int(g>>8) != cells[i].Min.Y {
			t.Errorf("piece %d starts at source (%d,%d), want (%d,%d)", i, r>>8, g>>8, cells[i].Min.X, cells[i].Min.Y)
		}
	}
}

func TestResample(t *testing.T) {
	out := Resample(gradient(30, 20), layout.Size{W: 12, H: 7})
	if b := out.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("Resample bounds = %v, want 12x7", b)
	}

	// Degenerate target sizes still produce a pixel.
	out = Resample(gradient(30, 20), layout.Size{})
	if b := out.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("Resample(0x0) bounds = %v, want 1x1", b)
	}
}

func TestPieces(t *testing.T) {
	src, err := Decode(encodePNG(t, gradient(200, 100)))
	if err != nil {
		t.Fatal(err)
	}
	l := layout.Build(src.Size(), layout.Size{W: 160, H: 90}, layout.Grid{Rows: 2, Cols: 2})
	for i, p := range Pieces(src, l) {
		want := l.PieceSize(i)
		if b := p.Bounds(); b.Dx() != want.W || b.Dy() != want.H {
			t.Errorf("piece %d is %v, want %v", i, b, want)
		}
	}
}
