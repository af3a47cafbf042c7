package pcb

// Parent, Child, SiblingLeft, and SiblingRight expose the process-tree
// linkage for read-only traversal (e.g. Pass-Up-or-Die ancestry walks,
// terminate's post-order traversal, the CLI's "tree" view).
func (p *PCB) Parent() Index      { return p.parent }
func (p *PCB) Child() Index       { return p.child }
func (p *PCB) SiblingLeft() Index { return p.sibLeft }
func (p *PCB) SiblingRight() Index { return p.sibRight }

// EmptyChild reports whether idx has no children.
func EmptyChild(pool *Pool, idx Index) bool {
	return pool.Get(idx).child == None
}

// InsertChild makes p the first child of parent; the parent's existing
// first child becomes p's right sibling.
func InsertChild(pool *Pool, parent, p Index) {
	if parent == None || p == None {
		return
	}
	parentPCB := pool.Get(parent)
	childPCB := pool.Get(p)
	firstSib := parentPCB.child

	parentPCB.child = p
	childPCB.parent = parent
	childPCB.sibRight = firstSib
	childPCB.sibLeft = None
	if firstSib != None {
		pool.Get(firstSib).sibLeft = p
	}
}

// RemoveChild detaches and returns parent's first child (None if it has
// none).
func RemoveChild(pool *Pool, parent Index) Index {
	if EmptyChild(pool, parent) {
		return None
	}
	return OutChild(pool, pool.Get(parent).child)
}

// OutChild detaches p from its parent's child list, wherever p sits in it.
// Returns None if p has no parent.
func OutChild(pool *Pool, p Index) Index {
	if p == None {
		return None
	}
	pcbP := pool.Get(p)
	if pcbP.parent == None {
		return None
	}
	parentPCB := pool.Get(pcbP.parent)
	if parentPCB.child == p {
		parentPCB.child = pcbP.sibRight
	}
	if pcbP.sibLeft != None {
		pool.Get(pcbP.sibLeft).sibRight = pcbP.sibRight
	}
	if pcbP.sibRight != None {
		pool.Get(pcbP.sibRight).sibLeft = pcbP.sibLeft
	}
	pcbP.parent, pcbP.sibLeft, pcbP.sibRight = None, None, None
	return p
}
