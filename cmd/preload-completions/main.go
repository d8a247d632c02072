// Command preload-completions writes shell completion scripts for preload.
//
//	preload-completions <bash|zsh|fish|powershell>   script on stdout
//	preload-completions all <dir>                     one file per shell in dir
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/preload/cmd/preload"
)

var shellFiles = map[string]string{
	"bash":       "preload.bash",
	"zsh":        "_preload",
	"fish":       "preload.fish",
	"powershell": "preload.ps1",
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell|all DIR>\n", os.Args[0])
		os.Exit(1)
	}

	rootCmd := preload.NewRootCmd()
	shell := os.Args[1]

	if shell == "all" {
		if len(os.Args) < 3 {
			fmt.Fprintf(os.Stderr, "Usage: %s all DIR\n", os.Args[0])
			os.Exit(1)
		}
		if err := writeAll(rootCmd, os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating completions: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if _, ok := shellFiles[shell]; !ok {
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\n", shell)
		fmt.Fprintf(os.Stderr, "Supported shells: bash, zsh, fish, powershell\n")
		os.Exit(1)
	}

	if err := generate(rootCmd, shell, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}

func generate(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	default:
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	}
}

func writeAll(rootCmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for shell, name := range shellFiles {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		genErr := generate(rootCmd, shell, f)
		closeErr := f.Close()
		if genErr != nil {
			return fmt.Errorf("%s: %w", shell, genErr)
		}
		if closeErr != nil {
			return closeErr
		}
	}
	return nil
}
