package ui

import (
	"errors"
	"fmt"
)

// Validation errors surfaced by Tree.Validate. Style and layout
// resolution assume a validated tree and expose no errors of their
// own for these conditions.
var (
	ErrNoRoot        = errors.New("ui: tree has no root element")
	ErrMultipleRoots = errors.New("ui: tree has more than one root element")
	ErrUnknownID     = errors.New("ui: reference to unknown element id")
	ErrCycle         = errors.New("ui: parent/child cycle")
)

// Tree is the canonical element store: lookup by id, parent-of,
// children-of with insertion order preserved. It is read-mostly;
// mutation happens strictly between computation passes.
type Tree struct {
	elements map[ElementID]*Element
	order    []ElementID // insertion order, for deterministic iteration
	root     ElementID
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{elements: make(map[ElementID]*Element)}
}

// Add inserts an element. The first element added with no parent
// becomes the root candidate; Validate settles whether the tree is
// actually single-rooted.
func (t *Tree) Add(e *Element) {
	if _, exists := t.elements[e.ID]; !exists {
		t.order = append(t.order, e.ID)
	}
	t.elements[e.ID] = e
	if e.Parent == 0 && t.root == 0 {
		t.root = e.ID
	}
}

// ByID looks up an element.
func (t *Tree) ByID(id ElementID) (*Element, bool) {
	e, ok := t.elements[id]
	return e, ok
}

// Root returns the root element, or nil for an empty/unrooted tree.
func (t *Tree) Root() *Element {
	if t.root == 0 {
		return nil
	}
	return t.elements[t.root]
}

// Parent returns the parent of the given element, or nil for the root
// or an unknown id.
func (t *Tree) Parent(id ElementID) *Element {
	e, ok := t.elements[id]
	if !ok || e.Parent == 0 {
		return nil
	}
	return t.elements[e.Parent]
}

// Children returns the child elements of id in declaration order.
// Unresolvable child ids are skipped; Validate rejects them up front.
func (t *Tree) Children(id ElementID) []*Element {
	e, ok := t.elements[id]
	if !ok {
		return nil
	}
	out := make([]*Element, 0, len(e.Children))
	for _, cid := range e.Children {
		if c, ok := t.elements[cid]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int { return len(t.elements) }

// All returns every element in insertion order.
func (t *Tree) All() []*Element {
	out := make([]*Element, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.elements[id])
	}
	return out
}

// Walk visits the subtree rooted at id depth-first in child order.
// Acyclicity is a precondition (Validate enforces it at decode time);
// Walk itself guards against revisiting so a bad tree cannot hang the
// caller.
func (t *Tree) Walk(id ElementID, visit func(*Element)) {
	seen := make(map[ElementID]bool, len(t.elements))
	t.walk(id, seen, visit)
}

func (t *Tree) walk(id ElementID, seen map[ElementID]bool, visit func(*Element)) {
	if seen[id] {
		return
	}
	seen[id] = true
	e, ok := t.elements[id]
	if !ok {
		return
	}
	visit(e)
	for _, cid := range e.Children {
		t.walk(cid, seen, visit)
	}
}

// Validate checks the referential integrity the rest of the system
// assumes: exactly one root, every parent/child reference resolves,
// parent and child links agree, and the parent graph is acyclic.
// Decoders must reject documents that fail here before any style or
// layout pass runs.
func (t *Tree) Validate() error {
	var roots int
	for _, id := range t.order {
		e := t.elements[id]
		if e.Parent == 0 {
			roots++
			continue
		}
		if _, ok := t.elements[e.Parent]; !ok {
			return fmt.Errorf("%w: element %d names parent %d", ErrUnknownID, e.ID, e.Parent)
		}
	}
	if roots == 0 {
		if len(t.elements) == 0 {
			return ErrNoRoot
		}
		// Every element has a parent: the parent graph must contain
		// a cycle somewhere.
		return fmt.Errorf("%w: no parentless element", ErrCycle)
	}
	if roots > 1 {
		return fmt.Errorf("%w: found %d", ErrMultipleRoots, roots)
	}

	for _, id := range t.order {
		e := t.elements[id]
		for _, cid := range e.Children {
			c, ok := t.elements[cid]
			if !ok {
				return fmt.Errorf("%w: element %d lists child %d", ErrUnknownID, e.ID, cid)
			}
			if c.Parent != e.ID {
				return fmt.Errorf("ui: element %d lists child %d whose parent is %d", e.ID, cid, c.Parent)
			}
		}
	}

	// Walk each parent chain with a visited set; a chain longer than
	// the tree, or one that revisits a node, is cyclic.
	for _, id := range t.order {
		seen := make(map[ElementID]bool)
		for cur := id; cur != 0; {
			if seen[cur] {
				return fmt.Errorf("%w: via element %d", ErrCycle, id)
			}
			seen[cur] = true
			cur = t.elements[cur].Parent
		}
	}
	return nil
}
