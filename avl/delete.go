// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree, returns false if
// the key was not present
func (tree *Tree[K, V]) Remove(key K) bool {
	_, removed := tree.Delete(key)
	return removed
}

// Delete - removes a specific item from the tree and returns its value
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	root, value, removed := tree.delete(key, tree.root)
	tree.root = root
	if removed {
		tree.count -= 1
		tree.stats.removals.Increment()
	}
	return value, removed
}

// internal delete routine, returns the possibly updated root of the
// sub-tree
func (tree *Tree[K, V]) delete(key K, p *Node[K, V]) (*Node[K, V], V, bool) {
	value := tree.zeroValue()
	if nil == p { // key not in tree
		return nil, value, false
	}

	removed := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, value, removed = tree.delete(key, p.left)
	case c > 0: // key > p.key
		p.right, value, removed = tree.delete(key, p.right)
	default: // found: delete p
		value = p.value // preserve the value part
		removed = true

		if nil == p.right {
			// left sub-tree is already balanced
			q := p.left
			tree.freeNode(p)
			return q, value, removed
		}

		// take over the in-order successor then remove that
		// from the right sub-tree, which frees a node with at
		// most one child
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.right, _, _ = tree.delete(s.key, p.right)
	}

	if !removed {
		return p, value, false
	}
	return tree.adjust(p), value, true
}

func (tree *Tree[K, V]) zeroValue() V {
	var zero V
	return zero
}
