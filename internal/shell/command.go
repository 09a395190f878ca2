package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"StockCompare/internal/model"
)

const prompt = "stockcompare> "

// HandleCommand runs one input line. It reports quit when the user asks to
// leave the shell.
func (s *Shell) HandleCommand(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "add", "a":
		s.Add(arg)
	case "view", "list", "ls":
		s.View()
	case "clear":
		s.Clear()
	case "show", "chart":
		w, err := model.ParseWindow(arg)
		if err != nil {
			s.Notifier.Error("Error", fmt.Sprintf("Unknown period '%s'. Choose one of: %s", arg, model.WindowList()))
			return false
		}
		s.Show(w)
	case "compare", "all":
		s.CompareAll()
	case "help", "?":
		fmt.Fprint(s.Out, helpText())
	case "quit", "exit", "q":
		return true
	default:
		if w, err := model.ParseWindow(name); err == nil && arg == "" {
			s.Show(w)
			return false
		}
		s.Notifier.Error("Error", fmt.Sprintf("Unknown command '%s'. Type 'help' for the list of commands.", name))
	}
	return false
}

// Run reads commands from in until EOF, quit, or ctx is cancelled. The
// current command always runs to completion first.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
		close(lines)
	}()

	fmt.Fprint(s.Out, helpText())
	for {
		fmt.Fprint(s.Out, prompt)
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.Out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.Out)
				return <-errc
			}
			if s.HandleCommand(line) {
				return nil
			}
		}
	}
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	b.WriteString("  add <company or ticker>   validate and add a symbol\n")
	b.WriteString("  view                      list selected symbols\n")
	b.WriteString("  clear                     remove all symbols\n")
	b.WriteString("  show <period>             chart highs over one period\n")
	for _, w := range model.Windows {
		b.WriteString(fmt.Sprintf("  %-25s show %s (%s)\n", string(w), w, w.Title()))
	}
	b.WriteString("  compare                   chart every period together\n")
	b.WriteString("  help                      show this text\n")
	b.WriteString("  quit                      leave\n")
	return b.String()
}
