package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/spline/cmd/spline"
	"github.com/arthur-debert/spline/internal/version"
)

func main() {
	rootCmd := spline.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SPLINE",
		Section: "1",
		Source:  "spline " + version.Version,
		Manual:  "spline manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
