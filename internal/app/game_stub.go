//go:build !ebiten

package app

import (
	"fmt"

	"lifepad/pkg/life"
)

// Run always reports that the GUI build tag is missing. The tui, bench and
// patterns commands work without it.
func Run(*Config, *life.Simulation) error {
	return fmt.Errorf("the GUI requires building with the 'ebiten' tag: go build -tags ebiten ./cmd/lifepad")
}
