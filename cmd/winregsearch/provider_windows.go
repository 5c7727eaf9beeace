//go:build windows

package main

import (
	"github.com/evanreyes/winregsearch/internal/registry"
	"github.com/evanreyes/winregsearch/internal/registry/winprovider"
)

func newWindowsProvider() (registry.Provider, error) {
	return winprovider.New(), nil
}
