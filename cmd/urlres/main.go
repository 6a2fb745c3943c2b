// Command urlres canonicalizes, resolves and relativizes URL paths and URLs.
//
// Usage:
//
//	urlres path canon PATH...
//	urlres path abs PATH BASE
//	urlres path rel PATH BASE
//	urlres url parse URL...
//	urlres url abs URL BASE
//	urlres url rel URL [BASE]
//
// Global flags may also be set through URLRES_* environment variables,
// e.g. URLRES_OUTPUT=json or URLRES_LOG_LEVEL=debug.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
