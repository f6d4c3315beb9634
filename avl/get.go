// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - value stored for key, false if the key is not in the tree
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if p := tree.search(key, tree.root); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// At - node for key, inserting the key with a zero value if it is
// not already present
func (tree *Tree[K, V]) At(key K) *Node[K, V] {
	if p := tree.search(key, tree.root); nil != p {
		return p
	}

	var zero V
	tree.Insert(key, zero)

	// rotations may have moved the new leaf so look it up again
	return tree.search(key, tree.root)
}
