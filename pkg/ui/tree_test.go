package ui

import (
	"errors"
	"testing"
)

// buildTree wires parents and children from a parent map and returns
// the assembled tree. Ids are added in ascending order.
func buildTree(t *testing.T, parents map[ElementID]ElementID) *Tree {
	t.Helper()
	tree := NewTree()
	var ids []ElementID
	for id := range parents {
		ids = append(ids, id)
	}
	// Deterministic insertion: ascending id order
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	byID := make(map[ElementID]*Element)
	for _, id := range ids {
		e := NewElement(id, ElementContainer)
		e.Parent = parents[id]
		byID[id] = e
	}
	for _, id := range ids {
		if p := parents[id]; p != 0 {
			if pe, ok := byID[p]; ok {
				pe.Children = append(pe.Children, id)
			}
		}
	}
	for _, id := range ids {
		tree.Add(byID[id])
	}
	return tree
}

func TestTree_LookupAndOrder(t *testing.T) {
	tree := buildTree(t, map[ElementID]ElementID{1: 0, 2: 1, 3: 1, 4: 2})

	if tree.Root() == nil || tree.Root().ID != 1 {
		t.Fatalf("root = %v, want element 1", tree.Root())
	}
	if p := tree.Parent(4); p == nil || p.ID != 2 {
		t.Errorf("Parent(4) = %v, want element 2", p)
	}
	if p := tree.Parent(1); p != nil {
		t.Errorf("Parent(root) = %v, want nil", p)
	}

	kids := tree.Children(1)
	if len(kids) != 2 || kids[0].ID != 2 || kids[1].ID != 3 {
		t.Errorf("Children(1) order wrong: %v", kids)
	}
}

func TestTree_WalkVisitsEachOnce(t *testing.T) {
	tree := buildTree(t, map[ElementID]ElementID{1: 0, 2: 1, 3: 1, 4: 3})

	var visited []ElementID
	tree.Walk(1, func(e *Element) { visited = append(visited, e.ID) })

	want := []ElementID{1, 2, 3, 4}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestTree_ValidateOK(t *testing.T) {
	tree := buildTree(t, map[ElementID]ElementID{1: 0, 2: 1, 3: 2})
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestTree_ValidateEmpty(t *testing.T) {
	if err := NewTree().Validate(); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Validate() = %v, want ErrNoRoot", err)
	}
}

func TestTree_ValidateMultipleRoots(t *testing.T) {
	tree := buildTree(t, map[ElementID]ElementID{1: 0, 2: 0})
	if err := tree.Validate(); !errors.Is(err, ErrMultipleRoots) {
		t.Errorf("Validate() = %v, want ErrMultipleRoots", err)
	}
}

func TestTree_ValidateUnknownParent(t *testing.T) {
	tree := NewTree()
	root := NewElement(1, ElementApp)
	orphan := NewElement(2, ElementContainer)
	orphan.Parent = 99
	tree.Add(root)
	tree.Add(orphan)
	if err := tree.Validate(); !errors.Is(err, ErrUnknownID) {
		t.Errorf("Validate() = %v, want ErrUnknownID", err)
	}
}

func TestTree_ValidateUnknownChild(t *testing.T) {
	tree := NewTree()
	root := NewElement(1, ElementApp)
	root.Children = []ElementID{7}
	tree.Add(root)
	if err := tree.Validate(); !errors.Is(err, ErrUnknownID) {
		t.Errorf("Validate() = %v, want ErrUnknownID", err)
	}
}

func TestTree_ValidateCycle(t *testing.T) {
	// 2 and 3 parent each other; 1 is a valid root alongside them.
	tree := NewTree()
	root := NewElement(1, ElementApp)
	a := NewElement(2, ElementContainer)
	b := NewElement(3, ElementContainer)
	a.Parent = 3
	b.Parent = 2
	a.Children = []ElementID{3}
	b.Children = []ElementID{2}
	tree.Add(root)
	tree.Add(a)
	tree.Add(b)
	if err := tree.Validate(); !errors.Is(err, ErrCycle) {
		t.Errorf("Validate() = %v, want ErrCycle", err)
	}
}

func TestTree_WalkCycleTerminates(t *testing.T) {
	// Walk must never revisit a node even on a malformed tree.
	tree := NewTree()
	a := NewElement(1, ElementContainer)
	b := NewElement(2, ElementContainer)
	b.Parent = 1
	a.Children = []ElementID{2}
	b.Children = []ElementID{1}
	tree.Add(a)
	tree.Add(b)

	count := 0
	tree.Walk(1, func(*Element) { count++ })
	if count != 2 {
		t.Errorf("walk over cyclic links visited %d nodes, want 2", count)
	}
}
