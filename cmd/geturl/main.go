package main

import (
	"os"

	"geturl/internal/fetcher"
)

func main() {
	if err := fetcher.NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
