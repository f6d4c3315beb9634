// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/fault"
)

// Check - verify ordering, balance, cached heights and node count
func (tree *Tree[K, V]) Check() error {
	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrTreeCount
	}
	return nil
}

// internal: consistency checker, all keys of p must lie strictly
// between low and high (nil means unbounded); returns the number of
// nodes and the height of the sub-tree
func (tree *Tree[K, V]) check(p *Node[K, V], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && tree.compare(*low, p.key) >= 0 {
		return 0, 0, fault.ErrTreeUnordered
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, 0, fault.ErrTreeUnordered
	}

	ln, lh, err := tree.check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fault.ErrTreeUnbalanced
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, 0, fault.ErrTreeHeight
	}
	return 1 + ln + rn, h, nil
}
