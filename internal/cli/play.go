package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/history"
	"github.com/matzehuels/jigsaw/pkg/i18n"
	"github.com/matzehuels/jigsaw/pkg/layout"
	"github.com/matzehuels/jigsaw/pkg/session"
)

// playLogFile receives log output while the play surface owns the terminal.
const playLogFile = "play.log"

// playOptions holds the flags of the play command.
type playOptions struct {
	grid        string
	fromHistory int
	lang        string
}

// playCommand creates the interactive puzzle command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play [image]",
		Short: "Play a puzzle made from an image",
		Long: `Play a puzzle made from an image.

The image is cut into a grid of pieces that are scattered around the frame.
Drag each piece into place with the mouse; it snaps when dropped close to
its slot. Without an image argument, pick one of the recently played images.

Keys:
  r   scatter the pieces again
  n   choose a new image
  q   quit`,
		Example: `  jigsaw play photo.jpg
  jigsaw play photo.png --grid 4x3
  jigsaw play --from-history 2
  jigsaw play photo.jpg --lang en`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeImage,
		RunE: func(cmd *cobra.Command, args []string) error {
			var image string
			if len(args) == 1 {
				image = args[0]
			}
			if image != "" && opts.fromHistory > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "give an image or --from-history, not both")
			}
			return c.runPlay(cmd.Context(), image, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.grid, "grid", "g", "", "grid RxC (default from config)")
	cmd.Flags().IntVar(&opts.fromHistory, "from-history", 0, "play history entry N (1 is the most recent)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "select and remember the interface language")
	_ = cmd.RegisterFlagCompletionFunc("grid", completeGrid)
	_ = cmd.RegisterFlagCompletionFunc("lang", completeLang)

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, image string, opts playOptions) error {
	store := c.newStore()
	defer store.Close()

	loc := c.newLocalizer(store)
	if opts.lang != "" {
		if _, err := selectLang(ctx, loc, opts.lang); err != nil {
			return err
		}
	}
	hist := c.newHistory(store)
	sess := c.newSession(hist, loc)

	grid := opts.grid
	if grid == "" {
		grid = c.config.Game.Grid
	}
	if err := sess.SetGridString(grid); err != nil {
		c.Logger.Warn("unknown grid, using fallback", "grid", grid, "fallback", layout.FallbackGrid.String())
	}

	ok, err := c.chooseImage(ctx, sess, hist, image, opts.fromHistory)
	if err != nil || !ok {
		return err
	}

	m, err := c.runGame(ctx, sess)
	if err != nil {
		return err
	}
	if err := m.Err(); err != nil {
		return err
	}
	c.printOutcome(ctx, sess, hist, m)
	sess.Reset()
	return nil
}

// newSession creates a session configured from the loaded config.
func (c *CLI) newSession(hist *history.History, loc *i18n.Localizer) *session.Session {
	return session.New(
		session.WithHistory(hist),
		session.WithLocalizer(loc),
		session.WithLogger(c.Logger),
		session.WithSnapshotSize(c.config.History.SnapshotSize),
		session.WithSnapThreshold(c.config.Game.SnapThreshold),
		session.WithLayoutOptions(
			layout.WithFillRatio(c.config.Game.FillRatio),
			layout.WithMargin(c.config.Game.Margin),
		),
	)
}

// chooseImage loads the image named on the command line, the requested
// history entry, or one picked interactively. It reports false when the
// picker was dismissed.
func (c *CLI) chooseImage(ctx context.Context, sess *session.Session, hist *history.History, image string, n int) (bool, error) {
	switch {
	case image != "":
		img, err := c.loadImage(ctx, image)
		if err != nil {
			return false, err
		}
		return true, sess.SetImage(img, filepath.Base(image))
	case n > 0:
		return true, sess.LoadHistory(ctx, n)
	}

	entries := hist.List(ctx)
	if len(entries) == 0 {
		printInfo("%s", sess.T(ctx, "historyEmpty", nil))
		printNextStep(sess.T(ctx, "setupTitle", nil), appName+" play <image>")
		return false, errors.New(errors.ErrCodeNoImage, "no image given")
	}

	picker := NewHistoryPickerModel(sess.T(ctx, "historyTitle", nil), historyRows(ctx, sess.Localizer(), entries))
	final, err := tea.NewProgram(picker, tea.WithContext(ctx)).Run()
	if err != nil {
		return false, contextErr(ctx, err)
	}
	picked := final.(HistoryPickerModel).Selected
	if picked == 0 {
		return false, nil
	}
	return true, sess.LoadHistory(ctx, picked)
}

// runGame runs the play surface until the player quits. Log output goes to
// a file in the store directory meanwhile.
func (c *CLI) runGame(ctx context.Context, sess *session.Session) (*GameModel, error) {
	restore := c.captureLogs()
	defer restore()

	p := tea.NewProgram(NewGameModel(ctx, sess),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		return nil, contextErr(ctx, err)
	}
	return final.(*GameModel), nil
}

// captureLogs redirects the logger away from the terminal and returns the
// function that undoes it.
func (c *CLI) captureLogs() func() {
	var out io.Writer = io.Discard
	var f *os.File
	if dir, err := cacheDir(); err == nil && !c.noStore {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err = os.OpenFile(filepath.Join(dir, playLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				out = f
			}
		}
	}
	c.Logger.SetOutput(out)
	return func() {
		c.Logger.SetOutput(c.logOut)
		if f != nil {
			f.Close()
		}
	}
}

// printOutcome summarizes the finished game.
func (c *CLI) printOutcome(ctx context.Context, sess *session.Session, hist *history.History, m *GameModel) {
	elapsed := sess.Elapsed().Round(time.Second)
	if m.Won {
		printSuccess("%s", sess.T(ctx, "victory", nil))
		printDetail("%s in %s", sess.Grid().Label(), elapsed)
	} else {
		printInfo("%s", sess.Progress(ctx))
	}

	if m.NewImage {
		printNextStep(sess.T(ctx, "setupTitle", nil), appName+" play <image>")
		if len(hist.List(ctx)) > 0 {
			printNextStep(sess.T(ctx, "historyTitle", nil), appName+" play")
		}
	}
}

// contextErr prefers the context's error when a program ended because the
// context was cancelled.
func contextErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
