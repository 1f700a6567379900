// Command mazepath solves maze files with the search strategies of the
// mazepath module and serves them over HTTP.
//
//	mazepath solve maze.txt --strategy astar
//	mazepath generate --size 20 --seed 7 > maze.txt
//	mazepath compare maze.txt
//	mazepath serve --config mazepath.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
