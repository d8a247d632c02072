package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/preload/cmd/preload"
	"github.com/arthur-debert/preload/internal/version"
)

func main() {
	rootCmd := preload.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PRELOAD",
		Section: "1",
		Source:  "preload " + version.Version,
		Manual:  "preload manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
