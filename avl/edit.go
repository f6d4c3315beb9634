// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Edit - change the key of an item from one key to another keeping
// its value
//
// the node is deleted and a new one inserted since changing the key
// in place could break the ordering.  The tree is unchanged if from
// is missing or to is already used by another item.
func (tree *Tree[K, V]) Edit(from K, to K) error {
	if nil == tree.search(from, tree.root) {
		return fault.ErrKeyNotFound
	}
	if 0 == tree.compare(from, to) {
		return nil
	}
	if nil != tree.search(to, tree.root) {
		return fault.ErrKeyExists
	}

	value, _ := tree.Delete(from)
	tree.Insert(to, value)
	return nil
}
