package model

import (
	"fmt"
	"strings"
)

// Window is a history span keyword understood by the provider.
type Window string

const (
	Window3M  Window = "3mo"
	Window6M  Window = "6mo"
	Window1Y  Window = "1y"
	Window5Y  Window = "5y"
	Window10Y Window = "10y"
	WindowMax Window = "max"
)

// Windows is the closed set of supported windows, shortest first.
var Windows = []Window{Window3M, Window6M, Window1Y, Window5Y, Window10Y, WindowMax}

var windowAliases = map[string]Window{
	"3mo": Window3M, "3m": Window3M, "3month": Window3M, "3months": Window3M,
	"6mo": Window6M, "6m": Window6M, "6month": Window6M, "6months": Window6M,
	"1y": Window1Y, "1yr": Window1Y, "1year": Window1Y,
	"5y": Window5Y, "5yr": Window5Y, "5year": Window5Y, "5years": Window5Y,
	"10y": Window10Y, "10yr": Window10Y, "10year": Window10Y, "10years": Window10Y,
	"max": WindowMax, "maximum": WindowMax,
}

// ParseWindow resolves a keyword or alias, case-insensitively.
func ParseWindow(s string) (Window, error) {
	w, ok := windowAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown window %q (want one of %s)", s, WindowList())
	}
	return w, nil
}

// Valid reports whether w is one of Windows.
func (w Window) Valid() bool {
	for _, v := range Windows {
		if v == w {
			return true
		}
	}
	return false
}

// Title is the button-style label, e.g. "3 Month" or "Max".
func (w Window) Title() string {
	switch w {
	case Window3M:
		return "3 Month"
	case Window6M:
		return "6 Month"
	case Window1Y:
		return "1 Year"
	case Window5Y:
		return "5 Year"
	case Window10Y:
		return "10 Year"
	case WindowMax:
		return "Max"
	default:
		return string(w)
	}
}

// WindowList returns the keywords joined for help and error text.
func WindowList() string {
	parts := make([]string, len(Windows))
	for i, w := range Windows {
		parts[i] = string(w)
	}
	return strings.Join(parts, ", ")
}
