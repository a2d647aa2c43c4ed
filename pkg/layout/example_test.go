package layout_test

import (
	"fmt"

	"github.com/matzehuels/jigsaw/pkg/layout"
)

func ExampleComputeFrame() {
	// An 800x400 image on a 1000x1000 surface, filling at most half of it.
	frame := layout.ComputeFrame(800.0/400.0, layout.Size{W: 1000, H: 1000}, layout.DefaultFillRatio)

	fmt.Println("Frame:", frame)
	// Output:
	// Frame: 500x250
}

func ExamplePartition() {
	fmt.Println(layout.Partition(500, 4))
	fmt.Println(layout.Partition(500, 3))
	// Output:
	// [125 125 125 125]
	// [166 166 168]
}

func ExampleBuild() {
	l := layout.Build(
		layout.Size{W: 800, H: 400},   // source image
		layout.Size{W: 1000, H: 1000}, // play surface
		layout.Grid{Rows: 2, Cols: 3},
	)

	fmt.Println("Frame:", l.Frame.Size, "at", l.Frame.Origin.X, l.Frame.Origin.Y)
	fmt.Println("Widths:", l.Widths)
	fmt.Println("Heights:", l.Heights)
	fmt.Println("Last target:", l.Target(5))
	// Output:
	// Frame: 500x250 at 250 375
	// Widths: [166 166 168]
	// Heights: [125 125]
	// Last target: {582 500}
}

func ExampleScatterZones() {
	f := layout.Frame{
		Origin: layout.Point{X: 250, Y: 375},
		Size:   layout.Size{W: 500, H: 250},
	}
	zones := layout.ScatterZones(f, layout.Size{W: 1000, H: 1000}, layout.Size{W: 100, H: 50}, layout.DefaultMargin)

	for _, z := range zones {
		fmt.Printf("%-6s x:[%v, %v] y:[%v, %v]\n", z.Side, z.XMin, z.XMax, z.YMin, z.YMax)
	}
	// Output:
	// left   x:[0, 145] y:[0, 950]
	// right  x:[755, 900] y:[0, 950]
	// top    x:[250, 650] y:[0, 320]
	// bottom x:[250, 650] y:[630, 950]
}
