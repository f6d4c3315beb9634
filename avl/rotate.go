// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func (p *Node[K, V]) update() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// adjust - restore balance at p after one of its sub-trees changed
// height by one, returns the new root of the sub-tree
func (tree *Tree[K, V]) adjust(p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}

	switch height(p.left) - height(p.right) {
	case +2: // left branch too high
		p1 := p.left
		if height(p1.left) >= height(p1.right) {
			// single LL rotation
			p = tree.rotateRight(p)
		} else {
			// double LR rotation
			p.left = tree.rotateLeft(p1)
			p = tree.rotateRight(p)
		}
	case -2: // right branch too high
		p1 := p.right
		if height(p1.right) >= height(p1.left) {
			// single RR rotation
			p = tree.rotateLeft(p)
		} else {
			// double RL rotation
			p.right = tree.rotateRight(p1)
			p = tree.rotateLeft(p)
		}
	}
	p.update()
	return p
}

// p's left child becomes the root of the sub-tree
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// p is now below p1 so must be updated first
	p.update()
	p1.update()

	tree.stats.rotations.Increment()
	return p1
}

// p's right child becomes the root of the sub-tree
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()

	tree.stats.rotations.Increment()
	return p1
}
