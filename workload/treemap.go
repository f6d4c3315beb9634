// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strings"

	"github.com/bitmark-inc/orderedmap/avl"
)

// TreeMap - Map backed by an AVL tree of strings
type TreeMap struct {
	tree *avl.Tree[string, string]
}

// NewTreeMap - wrap a tree, a nil tree creates a new one
func NewTreeMap(tree *avl.Tree[string, string]) *TreeMap {
	if nil == tree {
		tree = avl.New[string, string](strings.Compare)
	}
	return &TreeMap{
		tree: tree,
	}
}

// Tree - the underlying tree
func (m *TreeMap) Tree() *avl.Tree[string, string] {
	return m.tree
}

// Insert - add key with value, false if the key is already present
func (m *TreeMap) Insert(key string, value string) bool {
	return m.tree.Insert(key, value)
}

// Remove - delete key, false if it was absent
func (m *TreeMap) Remove(key string) bool {
	return m.tree.Remove(key)
}

// Edit - rename a key keeping its value
func (m *TreeMap) Edit(from string, to string) error {
	return m.tree.Edit(from, to)
}

// Get - value of key if present
func (m *TreeMap) Get(key string) (string, bool) {
	return m.tree.Get(key)
}

// GetOrCreate - value of key, inserting an empty value when absent
func (m *TreeMap) GetOrCreate(key string) string {
	return m.tree.At(key).Value()
}

// Clear - remove all items
func (m *TreeMap) Clear() {
	m.tree.Clear()
}

// Count - number of items
func (m *TreeMap) Count() int {
	return m.tree.Count()
}
