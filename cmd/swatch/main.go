// Swatch - colour encodings and WCAG contrast for colour cards
//
// Swatch derives the hex, RGB and HSL encodings of a colour, scores its
// contrast against the brand reference colours, and fills in the colour
// cards of design documents.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
