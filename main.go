package main

import (
	"os"

	"github.com/aglebova/distractors/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
