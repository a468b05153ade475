//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of life-ca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal board try `go run ./cmd/life-tui` or `go run ./cmd/life-headless`.")
	os.Exit(2)
}
