//go:build windows

// Package winprovider binds registry.Provider to the real Windows
// registry via golang.org/x/sys/windows/registry.
package winprovider

import (
	"fmt"
	"unicode/utf16"

	winreg "golang.org/x/sys/windows/registry"

	"github.com/evanreyes/winregsearch/internal/registry"
)

var rootKeys = map[registry.Hive]winreg.Key{
	registry.ClassesRoot:   winreg.CLASSES_ROOT,
	registry.CurrentUser:   winreg.CURRENT_USER,
	registry.LocalMachine:  winreg.LOCAL_MACHINE,
	registry.Users:         winreg.USERS,
	registry.CurrentConfig: winreg.CURRENT_CONFIG,
}

// Provider is the real platform registry.
type Provider struct{}

// New returns a Provider reading the live Windows registry.
func New() *Provider { return &Provider{} }

// OpenKey implements registry.Provider.
func (Provider) OpenKey(hive registry.Hive, path string) (registry.Key, error) {
	root, ok := rootKeys[hive]
	if !ok {
		return nil, fmt.Errorf("winprovider: unknown hive tag %d", hive)
	}
	k, err := winreg.OpenKey(root, path, winreg.READ)
	if err != nil {
		return nil, err
	}
	return &key{k: k}, nil
}

type key struct{ k winreg.Key }

func (kk *key) SubkeyNames() ([]string, error) {
	return kk.k.ReadSubKeyNames(-1)
}

func (kk *key) Values() ([]registry.ValueRecord, error) {
	names, err := kk.k.ReadValueNames(-1)
	if err != nil {
		return nil, err
	}
	out := make([]registry.ValueRecord, 0, len(names))
	for _, name := range names {
		size, valtype, err := kk.k.GetValue(name, nil)
		if err != nil && err != winreg.ErrShortBuffer {
			return nil, err
		}
		buf := make([]byte, size)
		n, valtype, err := kk.k.GetValue(name, buf)
		if err != nil {
			return nil, err
		}
		out = append(out, registry.ValueRecord{
			Name: name,
			Kind: registry.ValueKind(valtype),
			Data: normalizeText(registry.ValueKind(valtype), buf[:n]),
		})
	}
	return out, nil
}

func (kk *key) Close() error { return kk.k.Close() }

// normalizeText decodes SZ/EXPAND_SZ/MULTI_SZ payloads from the raw
// UTF-16LE the Windows API returns into UTF-8, so registry.Stringify's
// lossy-UTF-8 step (spec.md §6) operates uniformly across providers.
func normalizeText(kind registry.ValueKind, raw []byte) []byte {
	switch kind {
	case registry.KindSZ, registry.KindExpandSZ, registry.KindMultiSZ, registry.KindResourceList:
		return utf16leToUTF8(raw)
	default:
		return raw
	}
}

func utf16leToUTF8(raw []byte) []byte {
	if len(raw)%2 != 0 {
		return raw
	}
	u16 := make([]uint16, len(raw)/2)
	for i := range u16 {
		u16[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	return []byte(string(utf16.Decode(u16)))
}
