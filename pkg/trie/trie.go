package trie

// Trie is a prefix tree over strings, one node per character.
//
// A Trie is not safe for concurrent use.
type Trie struct {
	root  *Node
	words int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: &Node{}}
}

// Root returns the root node. It stands for the empty prefix and is never a word.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.words
}

// Add stores key, creating the missing nodes along its path.
// The empty key stores nothing.
func (t *Trie) Add(key string) *Trie {
	if key == "" {
		return t
	}
	node := t.root
	for _, r := range key {
		node = node.attachChild(r)
	}
	if !node.isWord {
		node.isWord = true
		t.words++
	}
	return t
}

// walk follows key from the root and returns the node it lands on, or nil
// when the path does not exist. The empty key lands on the root.
func (t *Trie) walk(key string) *Node {
	node := t.root
	for _, r := range key {
		node = node.children[r]
		if node == nil {
			return nil
		}
	}
	return node
}

// Get returns the node of a stored word, or nil. A node that only exists as
// the prefix of longer words is not returned.
func (t *Trie) Get(key string) *Node {
	node := t.walk(key)
	if node == nil || !node.isWord {
		return nil
	}
	return node
}

// Has reports whether key is a stored word.
func (t *Trie) Has(key string) bool {
	return t.Get(key) != nil
}

// Depth returns the number of characters of a stored word, or -1 when key is
// not stored.
func (t *Trie) Depth(key string) int {
	node := t.Get(key)
	if node == nil {
		return -1
	}
	return node.depth
}

// Search returns every stored word starting with prefix, depth first. The
// prefix itself comes first when it is a word, then the children are visited
// in ascending rune order, not in insertion order: after Add("b") and Add("a"),
// Search("") returns [a b]. The empty prefix returns every word.
func (t *Trie) Search(prefix string) []string {
	words := []string{}
	node := t.walk(prefix)
	if node == nil {
		return words
	}
	if node.isWord {
		words = append(words, node.String())
	}
	node.ForEachStepDown(func(descendant *Node) {
		if descendant.isWord {
			words = append(words, descendant.String())
		}
	})
	return words
}

// Remove deletes key. A word that is a prefix of other words only loses its
// word mark. Otherwise its node is detached and the now useless ancestors are
// pruned, stopping at the first ancestor that is a word or still has children.
func (t *Trie) Remove(key string) *Trie {
	node := t.Get(key)
	if node == nil {
		return t
	}
	node.isWord = false
	t.words--
	if !node.IsLeaf() {
		return t
	}

	// the walk stops below the root, which is never detached
	var pruned []*Node
	node.ForEachStepUp(func(current *Node) {
		pruned = append(pruned, current)
	}, func(current *Node) bool {
		return current == node || (!current.isWord && len(current.children) == 1)
	})
	for _, current := range pruned {
		current.detach()
	}
	return t
}
