package trie

// Destroyer performs structural deletion, re-normalizing the node graph
// along the deleted path so every Leaf/Extension/Branch invariant from §3
// still holds afterward: extensions never point at another extension or at
// an empty child, and no branch has fewer than two children unless it also
// carries a value.
type Destroyer struct {
	store *Store
}

// NewDestroyer returns a Destroyer writing through store.
func NewDestroyer(store *Store) *Destroyer {
	return &Destroyer{store: store}
}

// Remove deletes key from the subtree rooted at n, returning the new root
// (nil if the subtree became empty). Removing an absent key returns n
// unchanged.
func (d *Destroyer) Remove(n Node, key []byte) (Node, error) {
	switch n := n.(type) {
	case nil:
		return nil, nil
	case *LeafNode:
		if bytesEqual(n.Path, key) {
			return nil, nil
		}
		return n, nil
	case *ExtensionNode:
		return d.removeExtension(n, key)
	case *BranchNode:
		return d.removeBranch(n, key)
	default:
		return nil, ErrCorruptNode
	}
}

func (d *Destroyer) removeExtension(n *ExtensionNode, key []byte) (Node, error) {
	suffix, ok := StripPrefix(key, n.Path)
	if !ok {
		return n, nil
	}

	child, err := d.store.Load(n.Child)
	if err != nil {
		return nil, err
	}
	newChild, err := d.Remove(child, suffix)
	if err != nil {
		return nil, err
	}

	switch c := newChild.(type) {
	case nil:
		return nil, nil
	case *LeafNode:
		return &LeafNode{Path: concatNibbles(n.Path, c.Path), Value: c.Value}, nil
	case *ExtensionNode:
		return &ExtensionNode{Path: concatNibbles(n.Path, c.Path), Child: c.Child}, nil
	case *BranchNode:
		ref, err := d.store.StoreNode(c)
		if err != nil {
			return nil, err
		}
		return &ExtensionNode{Path: n.Path, Child: ref}, nil
	default:
		return nil, ErrCorruptNode
	}
}

func (d *Destroyer) removeBranch(n *BranchNode, key []byte) (Node, error) {
	nn := n.clone()
	if len(key) == 0 {
		nn.Value = nil
	} else {
		idx := key[0]
		child, err := d.store.Load(nn.Children[idx])
		if err != nil {
			return nil, err
		}
		newChild, err := d.Remove(child, key[1:])
		if err != nil {
			return nil, err
		}
		if newChild == nil {
			nn.Children[idx] = NodeRef{}
		} else {
			ref, err := d.store.StoreNode(newChild)
			if err != nil {
				return nil, err
			}
			nn.Children[idx] = ref
		}
	}
	return d.collapse(nn)
}

// collapse re-normalizes a branch after one of its slots changed, per the
// four cases of §4.6 step 4.
func (d *Destroyer) collapse(n *BranchNode) (Node, error) {
	count := 0
	pos := -1
	for i := 0; i < 16; i++ {
		if !n.Children[i].IsEmpty() {
			count++
			pos = i
		}
	}
	hasValue := n.Value != nil

	switch {
	case count >= 2 || (count == 1 && hasValue):
		return n, nil
	case count == 1:
		child, err := d.store.Load(n.Children[pos])
		if err != nil {
			return nil, err
		}
		switch c := child.(type) {
		case *LeafNode:
			return &LeafNode{Path: prependNibble(byte(pos), c.Path), Value: c.Value}, nil
		case *ExtensionNode:
			return &ExtensionNode{Path: prependNibble(byte(pos), c.Path), Child: c.Child}, nil
		case *BranchNode:
			ref, err := d.store.StoreNode(c)
			if err != nil {
				return nil, err
			}
			return &ExtensionNode{Path: []byte{byte(pos)}, Child: ref}, nil
		default:
			return nil, ErrCorruptNode
		}
	case hasValue:
		return &LeafNode{Path: nil, Value: n.Value}, nil
	default:
		return nil, nil
	}
}
