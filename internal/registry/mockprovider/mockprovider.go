// Package mockprovider is an in-memory registry.Provider used by every
// crawl-engine test in this module (spec.md §8 scenarios S1-S7) and by
// the --provider=mock flag for running the TUI without Windows.
package mockprovider

import (
	"errors"
	"sort"
	"strings"

	"github.com/evanreyes/winregsearch/internal/registry"
)

// Node is one key in the synthetic tree.
type Node struct {
	Children map[string]*Node
	Values   []registry.ValueRecord

	// OpenErr, when set, makes OpenKey on this exact node fail.
	OpenErr error
	// SubkeyEnumErr, when set, makes SubkeyNames on this node fail.
	SubkeyEnumErr error
	// ValueEnumErr, when set, makes Values on this node fail.
	ValueEnumErr error
}

func newNode() *Node {
	return &Node{Children: make(map[string]*Node)}
}

// Provider is the mock registry tree.
type Provider struct {
	roots map[registry.Hive]*Node
}

// New returns an empty tree (every hive present but childless).
func New() *Provider {
	p := &Provider{roots: make(map[registry.Hive]*Node)}
	for _, h := range registry.AllHives() {
		p.roots[h] = newNode()
	}
	return p
}

// AddKey creates (if absent) every segment of path under hive and returns
// the leaf node, so callers can attach values or error injection to it.
// path is backslash-separated and may be "" for the hive root.
func (p *Provider) AddKey(hive registry.Hive, path string) *Node {
	node := p.roots[hive]
	if node == nil {
		node = newNode()
		p.roots[hive] = node
	}
	if path == "" {
		return node
	}
	for _, seg := range strings.Split(path, "\\") {
		child, ok := node.Children[seg]
		if !ok {
			child = newNode()
			node.Children[seg] = child
		}
		node = child
	}
	return node
}

// SetValues attaches values to the key at path (created if absent).
func (p *Provider) SetValues(hive registry.Hive, path string, values []registry.ValueRecord) {
	p.AddKey(hive, path).Values = values
}

var errNotFound = errors.New("mock key not found")

// OpenKey implements registry.Provider.
func (p *Provider) OpenKey(hive registry.Hive, path string) (registry.Key, error) {
	node := p.roots[hive]
	if node == nil {
		return nil, errNotFound
	}
	if path != "" {
		for _, seg := range strings.Split(path, "\\") {
			child, ok := node.Children[seg]
			if !ok {
				return nil, errNotFound
			}
			node = child
		}
	}
	if node.OpenErr != nil {
		return nil, node.OpenErr
	}
	return &key{node: node}, nil
}

type key struct{ node *Node }

func (k *key) SubkeyNames() ([]string, error) {
	if k.node.SubkeyEnumErr != nil {
		return nil, k.node.SubkeyEnumErr
	}
	names := make([]string, 0, len(k.node.Children))
	for name := range k.node.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (k *key) Values() ([]registry.ValueRecord, error) {
	if k.node.ValueEnumErr != nil {
		return nil, k.node.ValueEnumErr
	}
	return k.node.Values, nil
}

func (k *key) Close() error { return nil }
