// Package main provides the entry point for the lazycrc checksum CLI.
package main

import (
	"errors"
	"os"

	"github.com/lazycrc/lazycrc/pkg/lazycrc/types"
)

func main() {
	if err := Execute(); err != nil {
		if errors.Is(err, types.ErrBadFilesFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
