// Command btsp solves bottleneck traveling salesman instances.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := createRootCommand(&Input{}, version).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
