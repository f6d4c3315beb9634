// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// MoveFrom - release all nodes of this tree then take over the nodes,
// ordering and statistics of src, leaving src empty
func (tree *Tree[K, V]) MoveFrom(src *Tree[K, V]) {
	if nil == src || tree == src {
		return
	}
	if nil != tree.root && tree.root == src.root {
		return
	}

	tree.Clear()

	tree.root = src.root
	tree.count = src.count
	tree.compare = src.compare
	tree.stats.transfer(&src.stats)

	src.root = nil
	src.count = 0
}
