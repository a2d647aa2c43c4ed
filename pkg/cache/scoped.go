package cache

// ScopedKeyer wraps a Keyer with a prefix so separate profiles keep separate
// history and language entries in one store.
//
// Example usage:
//
//	// Keys for the "kids" profile
//	keyer := NewScopedKeyer(NewDefaultKeyer(), ProfilePrefix("kids"))
//
//	// Keys shared by everyone
//	keyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ProfilePrefix returns the key prefix of a named profile. The empty profile
// has no prefix.
func ProfilePrefix(profile string) string {
	if profile == "" {
		return ""
	}
	return "profile:" + profile + ":"
}

// HistoryKey returns the prefixed history key.
func (k *ScopedKeyer) HistoryKey() string {
	return k.prefix + k.inner.HistoryKey()
}

// LangKey returns the prefixed language key.
func (k *ScopedKeyer) LangKey() string {
	return k.prefix + k.inner.LangKey()
}
