package main

import (
	"os"

	"github.com/resumatch/resumatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
