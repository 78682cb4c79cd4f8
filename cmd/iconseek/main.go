// Iconseek - a freedesktop.org icon resolver
//
// Iconseek resolves abstract icon names and requested pixel sizes into
// concrete image files, following the icon theme specification used by
// graphical desktop environments.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/iconseek/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
