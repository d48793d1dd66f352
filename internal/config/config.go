// Package config loads the declarative boot-entry configuration.
//
// The configuration is a TOML document whose top-level tables are boot-entry
// labels. Each table carries a required loader key plus arbitrary other keys
// forming the entry's parameter tree:
//
//	[Linux]
//	loader = "\\vmlinuz"
//	quiet = true
//	[Linux.console]
//	enable = true
//	speed = 115200
//
// Declaration order is authoritative: it decides the final boot order, so
// entries and parameters are kept in document order rather than Go map order.
// Multiple files may be merged; a later file overwrites entries by label but
// never moves a label already seen.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/danieljhkim/bootsync/internal/ordered"
	"github.com/danieljhkim/bootsync/internal/params"
)

var (
	// ErrNotFound indicates no configuration file could be located.
	ErrNotFound = errors.New("could not find bootsync.toml")

	// ErrMissingLoader indicates an entry lacks the required loader key.
	ErrMissingLoader = errors.New("missing required loader key")
)

// Entry is one desired boot entry.
type Entry struct {
	// Label is the unique user-facing name, the join key against live state.
	Label string

	// Loader is the loader path passed to efibootmgr via --loader.
	Loader string

	// Params is the parameter tree serialized into the --unicode argument.
	// Never contains a top-level "loader" key; that is extracted into Loader.
	Params *params.Tree
}

// Config is the desired configuration: label -> Entry in declaration order.
type Config struct {
	entries *ordered.Map[Entry]
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	cfg := &Config{entries: ordered.New[Entry]()}
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge loads another configuration file into c. Entries sharing a label
// with an already-loaded entry are replaced in place; new labels are
// appended in file order.
func (c *Config) Merge(path string) error {
	entries, err := parseFile(path)
	if err != nil {
		return err
	}
	for _, label := range entries.Keys() {
		entry, _ := entries.Get(label)
		c.entries.Set(label, entry)
	}
	return nil
}

// Labels returns the entry labels in declaration order.
func (c *Config) Labels() []string {
	return c.entries.Keys()
}

// Entry returns the entry with the given label.
func (c *Config) Entry(label string) (Entry, bool) {
	return c.entries.Get(label)
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return c.entries.Len()
}

// parseFile decodes one TOML file into ordered entries.
//
// BurntSushi's MetaData.Keys reports keys in document order, which is how
// both entry order and parameter order survive the decode into Go maps.
func parseFile(path string) (*ordered.Map[Entry], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	loaders := make(map[string]string)
	trees := make(map[string]*params.Tree)
	order := ordered.New[struct{}]()

	for _, key := range meta.Keys() {
		label := key[0]
		if _, ok := raw[label].(map[string]any); !ok {
			return nil, fmt.Errorf("failed to parse config %s: top-level key %q is not a boot entry table", path, label)
		}
		if !order.Has(label) {
			order.Set(label, struct{}{})
			trees[label] = params.NewTree()
		}
		if len(key) == 1 {
			continue
		}

		value, ok := lookup(raw[label], key[1:])
		if !ok {
			continue
		}
		if len(key) == 2 && key[1] == "loader" {
			loader, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("failed to parse config %s: entry %q loader is not a string", path, label)
			}
			loaders[label] = loader
			continue
		}
		graft(trees[label], key[1:], value)
	}

	entries := ordered.New[Entry]()
	for _, label := range order.Keys() {
		loader, ok := loaders[label]
		if !ok {
			return nil, fmt.Errorf("%w: entry %q in %s", ErrMissingLoader, label, path)
		}
		entries.Set(label, Entry{
			Label:  label,
			Loader: loader,
			Params: trees[label],
		})
	}
	return entries, nil
}

// lookup walks the decoded document down the given key path.
func lookup(node any, path []string) (any, bool) {
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// graft inserts a value into the tree at the given path, creating nested
// trees along the way in first-seen order. Table-valued keys only ensure the
// subtree exists; their children arrive as later keys.
func graft(tree *params.Tree, path []string, value any) {
	for _, key := range path[:len(path)-1] {
		tree = subtree(tree, key)
	}
	leaf := path[len(path)-1]
	if _, ok := value.(map[string]any); ok {
		subtree(tree, leaf)
		return
	}
	tree.Set(leaf, value)
}

// subtree returns the nested tree under key, creating it if needed.
func subtree(tree *params.Tree, key string) *params.Tree {
	if v, ok := tree.Get(key); ok {
		if sub, ok := v.(*params.Tree); ok {
			return sub
		}
	}
	sub := params.NewTree()
	tree.Set(key, sub)
	return sub
}
