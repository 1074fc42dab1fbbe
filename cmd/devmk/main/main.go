package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/devmk/cmd/devmk"
	"github.com/arthur-debert/devmk/pkg/style"
)

func main() {
	rootCmd := devmk.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.DetectRenderer(os.Stderr).RenderError(err))
		os.Exit(1)
	}
}
