package i18n

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jigsaw/pkg/cache"
)

// Localizer translates with the persisted language selection.
type Localizer struct {
	store    cache.Cache
	key      string
	fallback string
	logger   *log.Logger
}

// Option configures a Localizer.
type Option func(*Localizer)

// WithKeyer sets the keyer producing the storage key.
func WithKeyer(k cache.Keyer) Option {
	return func(l *Localizer) {
		if k != nil {
			l.key = k.LangKey()
		}
	}
}

// WithFallback sets the language used when no valid selection is stored.
// Unknown codes are ignored.
func WithFallback(code string) Option {
	return func(l *Localizer) {
		if Known(code) {
			l.fallback = code
		}
	}
}

// WithLogger sets the logger for store failures.
func WithLogger(lg *log.Logger) Option {
	return func(l *Localizer) {
		if lg != nil {
			l.logger = lg
		}
	}
}

// NewLocalizer creates a localizer persisting to store. A nil store keeps
// nothing.
func NewLocalizer(store cache.Cache, opts ...Option) *Localizer {
	if store == nil {
		store = cache.NewNullCache()
	}
	l := &Localizer{
		store:    store,
		key:      cache.LangKey,
		fallback: DefaultLang,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lang returns the stored language when it is known, else the fallback.
func (l *Localizer) Lang(ctx context.Context) string {
	data, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		l.logger.Warn("could not read language", "err", err)
		return l.fallback
	}
	if ok && Known(string(data)) {
		return string(data)
	}
	return l.fallback
}

// SetLang persists code. Unknown codes are rejected and leave the stored
// value unchanged. A store failure is logged and does not change the result.
func (l *Localizer) SetLang(ctx context.Context, code string) bool {
	if !Known(code) {
		return false
	}
	if err := l.store.Set(ctx, l.key, []byte(code), 0); err != nil {
		l.logger.Warn("could not save language", "lang", code, "err", err)
	}
	return true
}

// T translates key in the current language.
func (l *Localizer) T(ctx context.Context, key string, params Params) string {
	return Translate(l.Lang(ctx), key, params)
}
