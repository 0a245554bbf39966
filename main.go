package main

import (
	"os"

	"github.com/abhisek/estudia/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
