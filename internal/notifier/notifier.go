package notifier

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notifier reports the outcome of a user action.
type Notifier interface {
	Info(title, text string)
	Error(title, text string)
}

var (
	infoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(0, 1)
	errorBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// ConsoleNotifier prints each notification as a bordered box.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a notifier writing to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{Out: out}
}

func (c *ConsoleNotifier) Info(title, text string) {
	c.print(infoBox, title, text)
}

func (c *ConsoleNotifier) Error(title, text string) {
	c.print(errorBox, title, text)
}

func (c *ConsoleNotifier) print(box lipgloss.Style, title, text string) {
	body := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), text)
	fmt.Fprintln(c.Out, box.Render(body))
}
