// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Traverse - call visit for every node, children before their parent
//
// visit must not modify the tree
func (tree *Tree[K, V]) Traverse(visit func(*Node[K, V])) {
	postorder(tree.root, visit)
}

// Walk - call visit with each key and value in ascending key order
// until visit returns false
func (tree *Tree[K, V]) Walk(visit func(key K, value V) bool) {
	inorder(tree.root, visit)
}

// Clear - release every node leaving an empty tree
func (tree *Tree[K, V]) Clear() {
	postorder(tree.root, tree.freeNode)
	tree.root = nil
	tree.count = 0
}

// both sub-trees are finished with before p is visited, so visit may
// release p
func postorder[K any, V any](p *Node[K, V], visit func(*Node[K, V])) {
	if nil == p {
		return
	}
	postorder(p.left, visit)
	postorder(p.right, visit)
	visit(p)
}

// returns false when the walk was stopped
func inorder[K any, V any](p *Node[K, V], visit func(K, V) bool) bool {
	if nil == p {
		return true
	}
	if !inorder(p.left, visit) {
		return false
	}
	if !visit(p.key, p.value) {
		return false
	}
	return inorder(p.right, visit)
}
