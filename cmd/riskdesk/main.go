package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"riskdesk/cmd/riskdesk/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := commands.NewRootCommand()
	root.AddCommand(commands.NewMigrateCommand())
	root.AddCommand(commands.NewSeedCommand())

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "err", err)
		stop()
		os.Exit(1)
	}
}
