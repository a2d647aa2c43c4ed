package layout

import (
	"testing"

	"github.com/matzehuels/jigsaw/pkg/errors"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		total int
		count int
		want  []int
	}{
		{"even split", 500, 4, []int{125, 125, 125, 125}},
		{"remainder in last", 500, 3, []int{166, 166, 168}},
		{"single cell", 37, 1, []int{37}},
		{"more cells than pixels", 3, 5, []int{0, 0, 0, 0, 3}},
		{"zero dimension", 0, 2, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.total, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("Partition(%d, %d) len = %d, want %d", tt.total, tt.count, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Partition(%d, %d) = %v, want %v", tt.total, tt.count, got, tt.want)
					break
				}
			}
		})
	}
}

func TestPartitionSumsExactly(t *testing.T) {
	for total := 1; total <= 300; total += 7 {
		for count := 1; count <= 12; count++ {
			cells := Partition(total, count)
			sum := 0
			for i, c := range cells {
				sum += c
				if i < count-1 && c != total/count {
					t.Fatalf("Partition(%d, %d)[%d] = %d, want floor %d", total, count, i, c, total/count)
				}
			}
			if sum != total {
				t.Fatalf("Partition(%d, %d) sums to %d", total, count, sum)
			}
		}
	}
}

func TestPartitionZeroCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Partition with count 0 should panic")
		}
	}()
	Partition(100, 0)
}

func TestParseGrid(t *testing.T) {
	tests := []struct {
		input   string
		want    Grid
		wantErr bool
	}{
		{"3x4", Grid{3, 4}, false},
		{"5X5", Grid{5, 5}, false},
		{"2×3", Grid{2, 3}, false},
		{"4,3", Grid{4, 3}, false},
		{" 2 x 2 ", Grid{2, 2}, false},

		{"", Grid{}, true},
		{"3", Grid{}, true},
		{"ax3", Grid{}, true},
		{"3xb", Grid{}, true},
		{"0x3", Grid{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGrid(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGrid(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidGrid) {
					t.Errorf("ParseGrid(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidGrid)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseGrid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGridFallback(t *testing.T) {
	tests := []struct {
		input   string
		want    Grid
		wantErr bool
	}{
		{"4,3", Grid{4, 3}, false},
		{"0,4", Grid{3, 4}, true},
		{"5,n", Grid{5, 3}, true},
		{"x,x", Grid{3, 3}, true},
		{"2x99", Grid{2, 3}, true},
		{"-1x2", Grid{3, 2}, true},
		{"lots", FallbackGrid, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGridFallback(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseGridFallback(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGridFallback(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g := Grid{Rows: 4, Cols: 3}
	for i := range g.Count() {
		row, col := g.Cell(i)
		if got := g.Index(row, col); got != i {
			t.Errorf("Index(Cell(%d)) = %d", i, got)
		}
	}
}

func TestGridOptions(t *testing.T) {
	if !DefaultGrid.Offered() {
		t.Errorf("DefaultGrid %v should be offered", DefaultGrid)
	}
	if !FallbackGrid.Offered() {
		t.Errorf("FallbackGrid %v should be offered", FallbackGrid)
	}
	if (Grid{Rows: 7, Cols: 7}).Offered() {
		t.Error("7x7 should not be offered")
	}
	for _, g := range Options {
		if err := g.Validate(); err != nil {
			t.Errorf("option %v invalid: %v", g, err)
		}
	}
	if got := (Grid{Rows: 4, Cols: 3}).Label(); got != "4×3" {
		t.Errorf("Label() = %q", got)
	}
}
