package main

import (
	"os"

	"github.com/arthur-debert/spline/cmd/spline"
)

func main() {
	os.Exit(spline.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
