// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/orderedmap/counter"
)

// Statistics - operation counts since the tree was created
type Statistics struct {
	Insertions uint64 `json:"insertions"`
	Removals   uint64 `json:"removals"`
	Rotations  uint64 `json:"rotations"`
	Recycled   uint64 `json:"recycled"` // nodes reused from the free list
}

type statistics struct {
	insertions counter.Counter
	removals   counter.Counter
	rotations  counter.Counter
	recycled   counter.Counter
}

// Stats - read the current operation counts
func (tree *Tree[K, V]) Stats() Statistics {
	return Statistics{
		Insertions: tree.stats.insertions.Uint64(),
		Removals:   tree.stats.removals.Uint64(),
		Rotations:  tree.stats.rotations.Uint64(),
		Recycled:   tree.stats.recycled.Uint64(),
	}
}

func (s *statistics) transfer(src *statistics) {
	s.insertions.Transfer(&src.insertions)
	s.removals.Transfer(&src.removals)
	s.rotations.Transfer(&src.rotations)
	s.recycled.Transfer(&src.recycled)
}
