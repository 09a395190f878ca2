package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"

	"StockCompare/internal/config"
)

var configPath = flag.String("config", config.DefaultPath(), "path to the YAML config file")

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(&shellCmd{}, "")
	commander.Register(&chartCmd{}, "")
	commander.Register(&compareCmd{}, "")
	commander.Register(&validateCmd{}, "")

	flag.Parse()
	if flag.NArg() == 0 {
		// no subcommand: start the interactive shell
		if err := flag.CommandLine.Parse(append(os.Args[1:], "shell")); err != nil {
			log.Fatalf("[FATAL] parse flags: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}
