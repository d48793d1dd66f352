package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeBooleans(t *testing.T) {
	tree := NewTree()
	tree.Set("quiet", false)
	tree.Set("splash", true)

	require.Equal(t, "noquiet splash", Serialize(tree))
}

func TestSerializeScalars(t *testing.T) {
	tree := NewTree()
	tree.Set("root", "/dev/sda2")
	tree.Set("delay", int64(5))

	require.Equal(t, "root=/dev/sda2 delay=5", Serialize(tree))
}

func TestSerializeNestedTree(t *testing.T) {
	console := NewTree()
	console.Set("enable", true)
	console.Set("speed", int64(115200))

	tree := NewTree()
	tree.Set("console", console)

	require.Equal(t, "console.enable console.speed=115200", Serialize(tree))
}

func TestSerializeDeepNestingUsesFullPath(t *testing.T) {
	inner := NewTree()
	inner.Set("mode", "gfx")

	mid := NewTree()
	mid.Set("video", inner)
	mid.Set("keep", true)

	tree := NewTree()
	tree.Set("fb", mid)

	require.Equal(t, "fb.video.mode=gfx fb.keep", Serialize(tree))
}

func TestSerializePreservesDeclarationOrder(t *testing.T) {
	tree := NewTree()
	tree.Set("zeta", true)
	tree.Set("alpha", "1")
	tree.Set("mid", false)

	want := "zeta alpha=1 nomid"
	require.Equal(t, want, Serialize(tree))

	// Deterministic across repeated calls.
	for i := 0; i < 10; i++ {
		require.Equal(t, want, Serialize(tree))
	}
}

func TestSerializeEmpty(t *testing.T) {
	require.Equal(t, "", Serialize(nil))
	require.Equal(t, "", Serialize(NewTree()))
}
