// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - replay a list of operations against an ordered map
//
// the operations normally come from the "workload" list of a Lua
// configuration file, each one a table like:
//
//   { op = "edit", key = "alpha", to = "omega" }
//
// an empty key is reserved to mean "missing" and such an operation
// stops the run with fault.ErrMissingOperationKey.
//
// the map is reached through the Map interface so that the runner can
// be exercised with a mock.
package workload
