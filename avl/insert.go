// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// an existing key keeps its current value; returns true only if a
// node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	added := false
	tree.root, added = tree.insert(key, value, tree.root)
	if added {
		tree.count += 1
		tree.stats.insertions.Increment()
	}
	return added
}

// internal routine for insert, returns the possibly updated root of
// the sub-tree
func (tree *Tree[K, V]) insert(key K, value V, p *Node[K, V]) (*Node[K, V], bool) {
	if nil == p { // insert new node
		return tree.newNode(key, value), true
	}

	added := false
	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		p.left, added = tree.insert(key, value, p.left)
	case c > 0: // key > p.key
		p.right, added = tree.insert(key, value, p.right)
	default:
		return p, false
	}

	// nothing below changed shape
	if !added {
		return p, false
	}
	return tree.adjust(p), true
}
