package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/preload/cmd/preload"
	"github.com/arthur-debert/preload/pkg/render"
)

func main() {
	rootCmd := preload.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, preload.RenderError(err, render.IsColorTerminal(os.Stderr)))
		os.Exit(1)
	}
}
