// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// upper limit on reclaimed nodes kept by a single tree
const maximumFreeNodes = 1024

// Node - a node in the tree
type Node[K any, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 for a leaf
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("avl: pool corrupt: %d free nodes but empty list", tree.freeNodes)
		}
		return &Node[K, V]{
			key:    key,
			value:  value,
			height: 1,
		}
	}
	p := tree.pool
	tree.pool = p.left
	tree.freeNodes -= 1
	tree.stats.recycled.Increment()

	p.key = key
	p.value = value
	p.height = 1
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0

	if tree.freeNodes >= maximumFreeNodes {
		node.left = nil
		return
	}

	node.left = tree.pool // use as free list pointer
	tree.pool = node
	tree.freeNodes += 1
}
