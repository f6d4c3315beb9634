// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree mapping keys to values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node caches the height of its sub-tree and the balance is
// restored on the way back up from each insert or delete.  The
// recursive routines return the (possibly rotated) root of the
// sub-tree they were given, so no parent pointers are kept.
//
// Keys are ordered by a comparison function supplied when the tree is
// created, so any totally ordered type can be used as a key.
//
// An insert of an existing key does not overwrite its data.  A delete
// of a node with two children moves the key and data of its in-order
// successor into that node, so a *Node obtained from the tree must not
// be kept across any call that modifies the tree.
package avl
