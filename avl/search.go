// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
func (tree *Tree[K, V]) Search(key K) (*Node[K, V], bool) {
	p := tree.search(key, tree.root)
	return p, nil != p
}

func (tree *Tree[K, V]) search(key K, p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}

	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		return tree.search(key, p.left)
	case c > 0: // key > p.key
		return tree.search(key, p.right)
	default:
		return p
	}
}
