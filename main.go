package main

import (
	"os"

	"github.com/bloatai/bloatiq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
