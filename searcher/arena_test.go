package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaCreateRoot(t *testing.T) {
	t.Run("creates the root once", func(t *testing.T) {
		a := newArena()

		id, err := a.createRoot("start")

		require.NoError(t, err, "First root creation should succeed")
		require.Equal(t, NodeID(0), id, "Root should get the first id")
		require.Equal(t, NoNode, a.get(id).parent, "Root should have no parent")
	})

	t.Run("rejects a second root", func(t *testing.T) {
		a := newArena()
		_, err := a.createRoot("start")
		require.NoError(t, err, "First root creation should succeed")

		_, err = a.createRoot("again")

		require.ErrorIs(t, err, errRootExists, "Second root creation should fail")
	})
}

func TestArenaCreateChild(t *testing.T) {
	t.Run("appends children in insertion order with sequential ids", func(t *testing.T) {
		a := newArena()
		root, err := a.createRoot("start")
		require.NoError(t, err, "Root creation should succeed")

		first, err := a.createChild(root, "a")
		require.NoError(t, err, "Child creation should succeed")
		second, err := a.createChild(root, "b")
		require.NoError(t, err, "Child creation should succeed")

		require.Equal(t, []NodeID{first, second}, a.get(root).children,
			"Children should keep insertion order")
		require.Equal(t, NodeID(1), first, "Ids should be sequential")
		require.Equal(t, NodeID(2), second, "Ids should be sequential")
		require.Equal(t, root, a.get(first).parent, "Parent should be fixed at creation")
	})

	t.Run("rejects an unknown parent", func(t *testing.T) {
		a := newArena()
		_, err := a.createRoot("start")
		require.NoError(t, err, "Root creation should succeed")

		_, err = a.createChild(NodeID(42), "orphan")

		var unknown UnknownNodeError
		require.ErrorAs(t, err, &unknown, "Should report an unknown node")
		require.Equal(t, NodeID(42), unknown.ID, "Error should carry the bad id")
	})
}

func TestArenaTraversal(t *testing.T) {
	// root -> a -> b, plus a sibling of a
	build := func(t *testing.T) (*arena, NodeID, NodeID, NodeID) {
		a := newArena()
		root, err := a.createRoot("root")
		require.NoError(t, err, "Root creation should succeed")
		mid, err := a.createChild(root, "a")
		require.NoError(t, err, "Child creation should succeed")
		_, err = a.createChild(root, "sibling")
		require.NoError(t, err, "Child creation should succeed")
		leaf, err := a.createChild(mid, "b")
		require.NoError(t, err, "Child creation should succeed")
		return a, root, mid, leaf
	}

	t.Run("ancestors walks child to root inclusive", func(t *testing.T) {
		a, root, mid, leaf := build(t)

		chain, err := a.ancestors(leaf)

		require.NoError(t, err, "Ancestors should resolve")
		require.Equal(t, []NodeID{leaf, mid, root}, chain,
			"Chain should run child to root")
	})

	t.Run("pathFromRoot is the reverse of ancestors", func(t *testing.T) {
		a, root, mid, leaf := build(t)

		path, err := a.pathFromRoot(leaf)

		require.NoError(t, err, "Path should resolve")
		require.Equal(t, []NodeID{root, mid, leaf}, path,
			"Path should run root to node")
	})

	t.Run("rejects an unknown node", func(t *testing.T) {
		a, _, _, _ := build(t)

		_, err := a.ancestors(NodeID(99))

		var unknown UnknownNodeError
		require.ErrorAs(t, err, &unknown, "Should report an unknown node")
	})

	t.Run("get panics on an id the arena never issued", func(t *testing.T) {
		a, _, _, _ := build(t)

		require.Panics(t, func() {
			a.get(NodeID(99))
		}, "Lookup misuse should panic")
	})
}
