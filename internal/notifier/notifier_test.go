package notifier

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTickerList(t *testing.T) {
	assert.Equal(t, "No tickers selected yet.", FormatTickerList(nil))
	assert.Equal(t, "Current tickers:\nAAA\nBBB", FormatTickerList([]string{"AAA", "BBB"}))
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)
	n.Info("Success", "AAA added to the list.")
	n.Error("Error", "Please add at least one stock/company.")

	out := buf.String()
	assert.True(t, strings.Contains(out, "AAA added to the list."))
	assert.True(t, strings.Contains(out, "Please add at least one stock/company."))
	assert.Equal(t, 2, strings.Count(out, "Success")+strings.Count(out, "Error"))
}
