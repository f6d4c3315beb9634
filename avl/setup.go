// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/orderedmap/fault"
)

// CompareFunc - return <0 if a < b, 0 if a == b and >0 if a > b
type CompareFunc[K any] func(a K, b K) int

// Item - a key type that knows how to order itself
type Item[K any] interface {
	Compare(K) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
//
// a tree must not be copied, use MoveFrom to transfer the nodes to
// another tree
type Tree[K any, V any] struct {
	noCopy noCopy

	root    *Node[K, V]
	count   int
	compare CompareFunc[K]

	pool      *Node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool

	stats statistics
}

// New - create an initially empty tree ordered by compare
func New[K any, V any](compare CompareFunc[K]) *Tree[K, V] {
	if nil == compare {
		fault.Panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// NewOrdered - create an empty tree for a key type that supports < and >
func NewOrdered[K constraints.Ordered, V any]() *Tree[K, V] {
	return New[K, V](func(a K, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return +1
		default:
			return 0
		}
	})
}

// NewItem - create an empty tree for keys that implement Item
func NewItem[K Item[K], V any]() *Tree[K, V] {
	return New[K, V](func(a K, b K) int {
		return a.Compare(b)
	})
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// SetValue - replace the value of a node item, the key is unchanged
func (p *Node[K, V]) SetValue(value V) {
	p.value = value
}

// Left - return the left sub-tree of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right sub-tree of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return height(p)
}

// noCopy - go vet's copylocks check reports any copy of a struct
// containing this
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
