package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jigsaw/pkg/cache"
	jerrors "github.com/matzehuels/jigsaw/pkg/errors"
)

func quiet() Option { return WithLogger(log.New(io.Discard)) }

func TestAddOrdersMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	h := New(cache.NewMemoryCache(), quiet())

	for _, e := range []string{"a", "b", "c"} {
		if err := h.Add(ctx, e); err != nil {
			t.Fatalf("Add(%q): %v", e, err)
		}
	}
	if got := h.List(ctx); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("List() = %v, want [c b a]", got)
	}
}

func TestAddDeduplicates(t *testing.T) {
	ctx := context.Background()
	h := New(cache.NewMemoryCache(), quiet())

	for _, e := range []string{"a", "b", "c", "a"} {
		_ = h.Add(ctx, e)
	}
	if got := h.List(ctx); !slices.Equal(got, []string{"a", "c", "b"}) {
		t.Errorf("List() = %v, want [a c b]", got)
	}
}

func TestAddBounded(t *testing.T) {
	ctx := context.Background()
	h := New(cache.NewMemoryCache(), quiet())

	for i := range 8 {
		_ = h.Add(ctx, fmt.Sprintf("img-%d", i))
	}
	want := []string{"img-7", "img-6", "img-5", "img-4", "img-3"}
	if got := h.List(ctx); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestWithMax(t *testing.T) {
	ctx := context.Background()
	h := New(cache.NewMemoryCache(), WithMax(2), quiet())
	for _, e := range []string{"a", "b", "c"} {
		_ = h.Add(ctx, e)
	}
	if got := h.List(ctx); !slices.Equal(got, []string{"c", "b"}) {
		t.Errorf("List() = %v, want [c b]", got)
	}
	if New(nil, WithMax(0)).Max() != DefaultMax {
		t.Error("WithMax(0) should keep the default")
	}
}

func TestListDegradesSilently(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		store cache.Cache
	}{
		{"null store", cache.NewNullCache()},
		{"malformed", storeWith(t, cache.HistoryKey, "{not a list")},
		{"wrong shape", storeWith(t, cache.HistoryKey, `{"a":1}`)},
		{"failing store", failingStore{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.store, quiet())
			if got := h.List(ctx); len(got) != 0 {
				t.Errorf("List() = %v, want empty", got)
			}
		})
	}
}

func TestListTruncatesOversizedList(t *testing.T) {
	ctx := context.Background()
	h := New(storeWith(t, cache.HistoryKey, `["1","2","3","4","5","6","7"]`), quiet())
	if got := h.List(ctx); len(got) != DefaultMax {
		t.Errorf("len(List()) = %d, want %d", len(got), DefaultMax)
	}
}

func TestAddStoreFailure(t *testing.T) {
	h := New(failingStore{}, quiet())
	err := h.Add(context.Background(), "a")
	if !jerrors.Is(err, jerrors.ErrCodeStoreFailure) {
		t.Errorf("Add() error = %v, want STORE_FAILURE", err)
	}
	if jerrors.Rejected(err) {
		t.Error("store failures are not input rejections")
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	h := New(cache.NewMemoryCache(), quiet())
	_ = h.Add(ctx, "old")
	_ = h.Add(ctx, "new")

	if got, err := h.Get(ctx, 1); err != nil || got != "new" {
		t.Errorf("Get(1) = %q, %v; want new", got, err)
	}
	if got, err := h.Get(ctx, 2); err != nil || got != "old" {
		t.Errorf("Get(2) = %q, %v; want old", got, err)
	}
	for _, n := range []int{0, 3, -1} {
		if _, err := h.Get(ctx, n); !jerrors.Is(err, jerrors.ErrCodeNotFound) {
			t.Errorf("Get(%d) error = %v, want NOT_FOUND", n, err)
		}
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	h := New(cache.NewMemoryCache(), quiet())
	_ = h.Add(ctx, "a")
	if err := h.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := h.List(ctx); len(got) != 0 {
		t.Errorf("List() after Clear = %v", got)
	}
}

func TestScopedKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryCache()
	shared := New(store, quiet())
	kids := New(store, WithKeyer(cache.NewScopedKeyer(nil, cache.ProfilePrefix("kids"))), quiet())

	_ = shared.Add(ctx, "a")
	_ = kids.Add(ctx, "b")

	if got := shared.List(ctx); !slices.Equal(got, []string{"a"}) {
		t.Errorf("shared List() = %v", got)
	}
	if got := kids.List(ctx); !slices.Equal(got, []string{"b"}) {
		t.Errorf("kids List() = %v", got)
	}
}

func storeWith(t *testing.T, key, value string) cache.Cache {
	t.Helper()
	c := cache.NewMemoryCache()
	if err := c.Set(context.Background(), key, []byte(value), 0); err != nil {
		t.Fatal(err)
	}
	return c
}

var errBroken = errors.New("quota exceeded")

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, errBroken }
func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errBroken
}
func (failingStore) Delete(context.Context, string) error { return errBroken }
func (failingStore) Close() error                         { return nil }
