package cli

import (
	"context"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/jigsaw/pkg/errors"
	"github.com/matzehuels/jigsaw/pkg/layout"
	"github.com/matzehuels/jigsaw/pkg/session"
)

// Play surface colours.
var (
	surfaceColor = color.RGBA{R: 0x1c, G: 0x1c, B: 0x1c, A: 0xff}
	frameColor   = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	outlineColor = color.RGBA{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff}
	heldColor    = color.RGBA{R: 0x00, G: 0xaf, B: 0xaf, A: 0xff}
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("16")).Background(colorGreen).Padding(0, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// Terminal rows above and below the play surface.
const (
	headerRows = 1
	footerRows = 1
)

// tickMsg drives the victory animation.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// =============================================================================
// GameModel - Interactive puzzle surface
// =============================================================================

// GameModel is the bubbletea model of one play session. Terminal cells map
// to surface pixels one column wide and two rows high.
type GameModel struct {
	ctx  context.Context
	sess *session.Session
	rng  *rand.Rand

	width, height int
	started       bool
	clock         time.Time
	err           error

	bannerUntil time.Time
	confetti    *confetti
	cells       cellCache

	// Won is set once the puzzle completes.
	Won bool
	// NewImage is set when the player asked for another image.
	NewImage bool
}

// NewGameModel creates a game model for a session with an image loaded.
func NewGameModel(ctx context.Context, sess *session.Session) *GameModel {
	return &GameModel{
		ctx:   ctx,
		sess:  sess,
		rng:   layout.NewRand(),
		cells: make(cellCache),
		clock: time.Now(),
	}
}

// Err returns the last generation error, if any.
func (m *GameModel) Err() error { return m.err }

func (m *GameModel) Init() tea.Cmd {
	return nil
}

func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.generate()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.generate()
		case "n":
			m.NewImage = true
			return m, tea.Quit
		}
	case tea.MouseMsg:
		return m, m.mouse(msg)
	case tickMsg:
		m.clock = time.Time(msg)
		if m.confetti != nil && m.confetti.done(m.clock) {
			m.confetti = nil
		}
		if m.confetti != nil || m.clock.Before(m.bannerUntil) {
			return m, tick()
		}
	}
	return m, nil
}

// surface returns the play surface of the current terminal size.
func (m *GameModel) surface() layout.Size {
	return layout.Size{W: m.width, H: (m.height - headerRows - footerRows) * 2}
}

// point converts a terminal cell to the surface pixel at its centre.
func (m *GameModel) point(x, y int) layout.Point {
	return layout.Point{X: float64(x) + 0.5, Y: float64(y-headerRows)*2 + 1}
}

// generate starts the puzzle on the first call and regenerates it after.
func (m *GameModel) generate() {
	surface := m.surface()
	var err error
	if m.started {
		_, err = m.sess.Restart(m.ctx, surface)
	} else {
		_, err = m.sess.Start(m.ctx, surface)
	}
	m.err = err
	if err != nil {
		return
	}
	m.started = true
	m.Won = false
	m.bannerUntil = time.Time{}
	m.confetti = nil
}

func (m *GameModel) mouse(msg tea.MouseMsg) tea.Cmd {
	board := m.sess.Board()
	if board == nil || m.err != nil {
		return nil
	}
	pt := m.point(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			board.Press(pt)
		}
	case tea.MouseActionMotion:
		board.Move(pt)
	case tea.MouseActionRelease:
		board.Move(pt)
		if d, ok := m.sess.Release(m.ctx); ok && d.Victory {
			return m.celebrate(time.Now())
		}
	}
	return nil
}

// celebrate shows the victory banner and starts the confetti burst.
func (m *GameModel) celebrate(now time.Time) tea.Cmd {
	m.Won = true
	m.clock = now
	m.bannerUntil = now.Add(bannerDuration)
	m.confetti = newConfetti(m.rng, m.surface(), now)
	return tick()
}

func (m *GameModel) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.errorView())
	} else if m.sess.Board() != nil {
		b.WriteString(strings.Join(m.paint().render(m.cells), "\n"))
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *GameModel) header() string {
	if m.clock.Before(m.bannerUntil) {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bannerStyle.Render(m.sess.T(m.ctx, "victory", nil)))
	}
	title := headerStyle.Render(m.sess.T(m.ctx, "gameTitle", nil))
	if label := m.sess.Label(); label != "" {
		title += "  " + StyleDim.Render(label)
	}
	return title
}

func (m *GameModel) footer() string {
	progress := StyleValue.Render(m.sess.Progress(m.ctx))
	elapsed := StyleDim.Render(m.sess.Elapsed().Round(time.Second).String())
	help := StyleDim.Render(m.sess.T(m.ctx, "keysHelp", nil))
	return fmt.Sprintf("%s  %s  %s", progress, elapsed, help)
}

func (m *GameModel) errorView() string {
	msg := m.err.Error()
	if errors.Is(m.err, errors.ErrCodeInvalidSurface) {
		msg = fmt.Sprintf("terminal too small (%dx%d)", m.width, m.height)
	}
	rows := max(1, m.height-headerRows-footerRows)
	return lipgloss.Place(max(1, m.width), rows, lipgloss.Center, lipgloss.Center, StyleWarning.Render(msg))
}

// paint draws the frame, the pieces in z-order and any confetti.
func (m *GameModel) paint() *canvas {
	l := m.sess.Layout()
	board := m.sess.Board()

	cv := newCanvas(l.Surface)
	cv.clear(surfaceColor)

	frame := layout.Rect{X: int(l.Frame.Left()), Y: int(l.Frame.Top()), W: l.Frame.Size.W, H: l.Frame.Size.H}
	cv.fillRect(frame, frameColor)
	cv.strokeRect(frame.Expand(1), outlineColor)

	images := m.sess.PieceImages()
	for _, i := range board.ZOrder() {
		b := board.Piece(i).Bounds()
		cv.drawImage(images[i], b.X, b.Y)
	}
	if i, ok := board.Dragging(); ok {
		cv.strokeRect(board.Piece(i).Bounds(), heldColor)
	}

	if m.confetti != nil {
		m.confetti.draw(cv, m.clock)
	}
	return cv
}
