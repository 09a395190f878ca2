// Package watchlist holds the working set of accepted symbols for one run.
package watchlist

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned by Add when the symbol is already present.
var ErrDuplicate = errors.New("already in the list")

// Watchlist is an ordered set of symbols. It is not safe for concurrent use.
type Watchlist struct {
	symbols []string
	index   map[string]struct{}
}

// New returns an empty Watchlist.
func New() *Watchlist {
	return &Watchlist{index: make(map[string]struct{})}
}

// Add appends symbol unless it is already present.
func (w *Watchlist) Add(symbol string) error {
	if w.Contains(symbol) {
		return fmt.Errorf("%s is %w", symbol, ErrDuplicate)
	}
	if w.index == nil {
		w.index = make(map[string]struct{})
	}
	w.index[symbol] = struct{}{}
	w.symbols = append(w.symbols, symbol)
	return nil
}

// Contains reports whether symbol has been added.
func (w *Watchlist) Contains(symbol string) bool {
	_, ok := w.index[symbol]
	return ok
}

// Clear removes every symbol.
func (w *Watchlist) Clear() {
	w.symbols = nil
	w.index = make(map[string]struct{})
}

// List returns the symbols in insertion order.
func (w *Watchlist) List() []string {
	out := make([]string, len(w.symbols))
	copy(out, w.symbols)
	return out
}

// Len returns the number of symbols.
func (w *Watchlist) Len() int { return len(w.symbols) }
