package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/pkg/errors"
	jio "github.com/matzehuels/jigsaw/pkg/io"
	"github.com/matzehuels/jigsaw/pkg/layout"
	"github.com/matzehuels/jigsaw/pkg/picture"
)

// layoutOptions holds the flags of the layout command.
type layoutOptions struct {
	surface   string
	source    string
	grid      string
	fillRatio float64
	margin    float64
	seed      uint64
	json      bool
	output    string
	from      string
}

// layoutCommand creates the layout command for inspecting puzzle geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOptions{
		surface:   "1000x1000",
		source:    "800x600",
		fillRatio: layout.DefaultFillRatio,
		margin:    layout.DefaultMargin,
	}

	cmd := &cobra.Command{
		Use:   "layout [image]",
		Short: "Print the geometry of a puzzle without playing it",
		Long: `Print the geometry of a puzzle without playing it.

The layout command computes the frame, the piece cells with their correct
positions and the scatter zones pieces are dropped into, for a play surface
of the given size. With an image argument the source size is read from the
image; otherwise --source is used.

Sizes are in surface pixels. The defaults match a browser-sized surface;
pass --surface to inspect a terminal-sized one.

With --json the layout is written as JSON instead, and --output saves the
JSON to a file. --from prints a layout saved earlier.`,
		Example: `  jigsaw layout --grid 4x3
  jigsaw layout photo.jpg --surface 120x60
  jigsaw layout --seed 42 -o layout.json
  jigsaw layout --from layout.json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeImage,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.grid == "" {
				opts.grid = c.config.Game.Grid
			}
			var image string
			if len(args) == 1 {
				image = args[0]
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), image, opts)
		},
	}

	cmd.Flags().StringVar(&opts.surface, "surface", opts.surface, "play surface size WxH")
	cmd.Flags().StringVar(&opts.source, "source", opts.source, "source image size WxH when no image is given")
	cmd.Flags().StringVarP(&opts.grid, "grid", "g", "", "grid RxC (default from config)")
	cmd.Flags().Float64Var(&opts.fillRatio, "fill-ratio", opts.fillRatio, "fraction of the surface the frame may occupy")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "gap between scatter zones and the frame")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for sampled scatter positions (0: random)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the layout as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "save the layout as JSON to a file")
	cmd.Flags().StringVar(&opts.from, "from", "", "print a layout saved with --output")
	_ = cmd.RegisterFlagCompletionFunc("grid", completeGrid)

	return cmd
}

// runLayout resolves the sizes, builds the layout and prints it.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, image string, opts layoutOptions) error {
	if opts.from != "" {
		doc, err := jio.ImportJSON(opts.from)
		if err != nil {
			return err
		}
		c.Logger.Debug("layout imported", "path", opts.from, "grid", doc.Layout.Grid.String())
		return c.emitLayout(w, doc.Layout, doc.Scatter, opts)
	}

	surface, err := layout.ParseSize(opts.surface)
	if err != nil {
		return err
	}
	grid, err := layout.ParseGrid(opts.grid)
	if err != nil {
		return err
	}
	if err := errors.ValidateRatio("fill-ratio", opts.fillRatio); err != nil {
		return err
	}

	source, err := c.sourceSize(ctx, image, opts.source)
	if err != nil {
		return err
	}

	l := layout.Build(source, surface, grid,
		layout.WithFillRatio(opts.fillRatio),
		layout.WithMargin(opts.margin),
	)
	rng := layout.NewRand()
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	return c.emitLayout(w, l, scatterAll(l, rng), opts)
}

// emitLayout writes l in the requested form. scatter may be nil.
func (c *CLI) emitLayout(w io.Writer, l *layout.Layout, scatter []layout.Point, opts layoutOptions) error {
	if opts.output != "" {
		if err := jio.ExportJSON(l, scatter, opts.output); err != nil {
			return err
		}
		printSuccess("Layout saved")
		printFile(opts.output)
		return nil
	}
	if opts.json {
		return jio.WriteJSON(l, scatter, w)
	}
	printLayout(l, scatter)
	return nil
}

// scatterAll samples an initial position for every piece.
func scatterAll(l *layout.Layout, rng *rand.Rand) []layout.Point {
	pts := make([]layout.Point, len(l.Cells))
	for i := range pts {
		pts[i] = l.Scatter(rng, i)
	}
	return pts
}

// sourceSize returns the size of image, or parses fallback when image is
// empty.
func (c *CLI) sourceSize(ctx context.Context, image, fallback string) (layout.Size, error) {
	if image == "" {
		return layout.ParseSize(fallback)
	}
	img, err := c.loadImage(ctx, image)
	if err != nil {
		return layout.Size{}, err
	}
	return img.Size(), nil
}

// loadImage loads an image behind a spinner.
func (c *CLI) loadImage(ctx context.Context, path string) (*picture.Image, error) {
	prog := newProgress(c.Logger)
	img, err := spin(ctx, os.Stderr, fmt.Sprintf("Loading %s...", path), func() (*picture.Image, error) {
		return picture.LoadFile(path)
	})
	if err != nil {
		if ctx.Err() == nil {
			printError("Could not load image")
		}
		return nil, err
	}
	c.Logger.Debug("image decoded", "type", img.MIME, "size", img.Size())
	prog.done("Loaded " + path)
	return img, nil
}

// printLayout prints the frame summary, the piece table and the scatter
// zones of every distinct piece size. scatter may be nil.
func printLayout(l *layout.Layout, scatter []layout.Point) {
	printKeyValue("Surface", l.Surface.String())
	printKeyValue("Source", l.Source.String())
	printKeyValue("Grid", l.Grid.Label())
	printKeyValue("Frame", fmt.Sprintf("%s at (%s, %s)", l.Frame.Size, formatCoord(l.Frame.Left()), formatCoord(l.Frame.Top())))
	printKeyValue("Columns", joinInts(l.Widths))
	printKeyValue("Rows", joinInts(l.Heights))
	printNewline()

	headers := []string{"#", "Cell", "Size", "Target", "Zones"}
	if scatter != nil {
		headers = append(headers, "Scatter")
	}
	pieces := newTable(headers...)
	for i := range l.Cells {
		row, col := l.Grid.Cell(i)
		target := l.Target(i)
		zones := l.Zones(i)
		sides := make([]string, len(zones))
		for j, z := range zones {
			sides[j] = z.Side.String()
		}
		if len(sides) == 0 {
			sides = []string{StyleWarning.Render("none")}
		}
		cells := []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("r%d c%d", row+1, col+1),
			l.PieceSize(i).String(),
			fmt.Sprintf("(%d, %d)", int(target.X), int(target.Y)),
			strings.Join(sides, " "),
		}
		if scatter != nil {
			cells = append(cells, fmt.Sprintf("(%s, %s)", formatCoord(scatter[i].X), formatCoord(scatter[i].Y)))
		}
		pieces.Row(cells...)
	}
	fmt.Println(pieces.Render())
	printNewline()

	zones := newTable("Piece size", "Side", "X", "Y")
	seen := map[layout.Size]bool{}
	for i := range l.Cells {
		size := l.PieceSize(i)
		if seen[size] {
			continue
		}
		seen[size] = true
		for _, z := range l.Zones(i) {
			zones.Row(
				size.String(),
				z.Side.String(),
				fmt.Sprintf("%s..%s", formatCoord(z.XMin), formatCoord(z.XMax)),
				fmt.Sprintf("%s..%s", formatCoord(z.YMin), formatCoord(z.YMax)),
			)
		}
	}
	fmt.Println(zones.Render())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
