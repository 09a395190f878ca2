package notifier

import "strings"

// FormatTickerList formats the current working set for the view action.
func FormatTickerList(symbols []string) string {
	if len(symbols) == 0 {
		return "No tickers selected yet."
	}
	return "Current tickers:\n" + strings.Join(symbols, "\n")
}
