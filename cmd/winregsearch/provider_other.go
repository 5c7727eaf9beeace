//go:build !windows

package main

import (
	"errors"

	"github.com/evanreyes/winregsearch/internal/registry"
)

func newWindowsProvider() (registry.Provider, error) {
	return nil, errors.New("the windows registry provider is only available on Windows; pass --provider=mock")
}
