package cache

// Fixed keys of the default keyer.
const (
	HistoryKey = "puzzle-history"
	LangKey    = "puzzle-lang"
)

// Keyer generates store keys.
type Keyer interface {
	// HistoryKey returns the key of the recent-image list.
	HistoryKey() string

	// LangKey returns the key of the selected language.
	LangKey() string
}

// DefaultKeyer returns the unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// HistoryKey returns "puzzle-history".
func (DefaultKeyer) HistoryKey() string { return HistoryKey }

// LangKey returns "puzzle-lang".
func (DefaultKeyer) LangKey() string { return LangKey }
