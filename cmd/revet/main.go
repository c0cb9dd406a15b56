package main

import (
	"os"

	"github.com/revet-dev/revet/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
