// Package params serializes boot-entry parameter trees into the flag syntax
// loaders expect on their command line.
//
// A parameter tree maps option names to booleans, scalars, or nested trees.
// Serialization is what efibootmgr receives as the --unicode argument:
//
//	quiet = true                  -> "quiet"
//	quiet = false                 -> "noquiet"
//	[console] enable=true, speed=115200 -> "console.enable console.speed=115200"
//
// Token order always equals the tree's declaration order so that repeated
// runs produce byte-identical command lines.
package params

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/bootsync/internal/ordered"
)

// Tree is an insertion-ordered parameter tree. Values are booleans, scalars
// (string, int64, float64, ...), or nested *Tree values.
type Tree struct {
	opts *ordered.Map[any]
}

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return &Tree{opts: ordered.New[any]()}
}

// Set stores a value under key, preserving first-seen key order.
func (t *Tree) Set(key string, value any) {
	t.opts.Set(key, value)
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	return t.opts.Get(key)
}

// Keys returns the option names in declaration order.
func (t *Tree) Keys() []string {
	return t.opts.Keys()
}

// Len returns the number of options at this level.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.opts.Len()
}

// Serialize encodes the tree into a space-joined token string.
// A nil or empty tree serializes to the empty string.
func Serialize(t *Tree) string {
	if t == nil {
		return ""
	}
	return strings.Join(tokens(t, ""), " ")
}

// tokens walks the tree in declaration order, emitting one token per leaf.
// Nested options are emitted with their full dot-joined path.
func tokens(t *Tree, prefix string) []string {
	out := make([]string, 0, t.Len())
	for _, key := range t.Keys() {
		value, _ := t.Get(key)
		switch v := value.(type) {
		case bool:
			if v {
				out = append(out, prefix+key)
			} else {
				out = append(out, prefix+"no"+key)
			}
		case *Tree:
			out = append(out, tokens(v, prefix+key+".")...)
		default:
			out = append(out, fmt.Sprintf("%s%s=%v", prefix, key, v))
		}
	}
	return out
}
