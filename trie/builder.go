package trie

// Builder performs structural insertion into a node graph, producing a new
// normal-form root and writing every newly created child to the Store
// before its parent (content addressing requires a child's hash to exist
// before the parent that references it can be encoded).
type Builder struct {
	store *Store
}

// NewBuilder returns a Builder writing through store.
func NewBuilder(store *Store) *Builder {
	return &Builder{store: store}
}

// Put inserts or overwrites the value at key (a nibble path) under n,
// returning the new root of the subtree. n may be nil (Empty).
func (b *Builder) Put(n Node, key, value []byte) (Node, error) {
	switch n := n.(type) {
	case nil:
		return &LeafNode{Path: append([]byte(nil), key...), Value: value}, nil
	case *LeafNode:
		return b.putLeaf(n, key, value)
	case *ExtensionNode:
		return b.putExtension(n, key, value)
	case *BranchNode:
		return b.putBranch(n, key, value)
	default:
		return nil, ErrCorruptNode
	}
}

func (b *Builder) putLeaf(n *LeafNode, key, value []byte) (Node, error) {
	if bytesEqual(n.Path, key) {
		return &LeafNode{Path: n.Path, Value: value}, nil
	}

	c := prefixLen(n.Path, key)
	branch, err := b.buildDivergentBranch(n.Path[c:], n.Value, key[c:], value)
	if err != nil {
		return nil, err
	}
	if c == 0 {
		return branch, nil
	}
	ref, err := b.store.StoreNode(branch)
	if err != nil {
		return nil, err
	}
	return &ExtensionNode{Path: key[:c], Child: ref}, nil
}

// buildDivergentBranch builds the branch where two paths (the existing
// leaf's suffix pSuffix/pValue and the new key's suffix keySuffix/value)
// first diverge. Each suffix is non-empty iff it still has nibbles beyond
// the branch; an empty suffix means its value terminates at the branch
// itself.
func (b *Builder) buildDivergentBranch(pSuffix, pValue, keySuffix, value []byte) (*BranchNode, error) {
	branch := &BranchNode{}

	if len(pSuffix) == 0 {
		branch.Value = pValue
	} else {
		leaf := &LeafNode{Path: pSuffix[1:], Value: pValue}
		ref, err := b.store.StoreNode(leaf)
		if err != nil {
			return nil, err
		}
		branch.Children[pSuffix[0]] = ref
	}

	if len(keySuffix) == 0 {
		branch.Value = value
	} else {
		leaf := &LeafNode{Path: keySuffix[1:], Value: value}
		ref, err := b.store.StoreNode(leaf)
		if err != nil {
			return nil, err
		}
		branch.Children[keySuffix[0]] = ref
	}

	return branch, nil
}

func (b *Builder) putExtension(n *ExtensionNode, key, value []byte) (Node, error) {
	c := prefixLen(n.Path, key)

	if c == len(n.Path) {
		child, err := b.store.Load(n.Child)
		if err != nil {
			return nil, err
		}
		newChild, err := b.Put(child, key[c:], value)
		if err != nil {
			return nil, err
		}
		ref, err := b.store.StoreNode(newChild)
		if err != nil {
			return nil, err
		}
		return &ExtensionNode{Path: n.Path, Child: ref}, nil
	}

	pSuffix := n.Path[c:]
	var childRef NodeRef
	if len(pSuffix) == 1 {
		childRef = n.Child
	} else {
		ext := &ExtensionNode{Path: pSuffix[1:], Child: n.Child}
		ref, err := b.store.StoreNode(ext)
		if err != nil {
			return nil, err
		}
		childRef = ref
	}

	branch := &BranchNode{}
	if len(pSuffix) > 0 {
		branch.Children[pSuffix[0]] = childRef
	}

	keySuffix := key[c:]
	if len(keySuffix) == 0 {
		branch.Value = value
	} else {
		leaf := &LeafNode{Path: keySuffix[1:], Value: value}
		ref, err := b.store.StoreNode(leaf)
		if err != nil {
			return nil, err
		}
		branch.Children[keySuffix[0]] = ref
	}

	if c == 0 {
		return branch, nil
	}
	ref, err := b.store.StoreNode(branch)
	if err != nil {
		return nil, err
	}
	return &ExtensionNode{Path: key[:c], Child: ref}, nil
}

func (b *Builder) putBranch(n *BranchNode, key, value []byte) (Node, error) {
	nn := n.clone()
	if len(key) == 0 {
		nn.Value = value
		return nn, nil
	}

	idx := key[0]
	if nn.Children[idx].IsEmpty() {
		leaf := &LeafNode{Path: key[1:], Value: value}
		ref, err := b.store.StoreNode(leaf)
		if err != nil {
			return nil, err
		}
		nn.Children[idx] = ref
		return nn, nil
	}

	child, err := b.store.Load(nn.Children[idx])
	if err != nil {
		return nil, err
	}
	newChild, err := b.Put(child, key[1:], value)
	if err != nil {
		return nil, err
	}
	ref, err := b.store.StoreNode(newChild)
	if err != nil {
		return nil, err
	}
	nn.Children[idx] = ref
	return nn, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
