// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedmap/fault"
	"github.com/bitmark-inc/orderedmap/workload"
	"github.com/bitmark-inc/orderedmap/workload/mocks"
)

const (
	dir         = "testing"
	logCategory = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

func TestRunCallsMap(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMap(ctl)
	gomock.InOrder(
		m.EXPECT().Insert("a", "1").Return(true).Times(1),
		m.EXPECT().Insert("a", "2").Return(false).Times(1),
		m.EXPECT().Get("a").Return("1", true).Times(1),
		m.EXPECT().Edit("a", "b").Return(nil).Times(1),
		m.EXPECT().Edit("x", "y").Return(fault.ErrKeyNotFound).Times(1),
		m.EXPECT().GetOrCreate("c").Return("").Times(1),
		m.EXPECT().Remove("z").Return(false).Times(1),
		m.EXPECT().Clear().Times(1),
		m.EXPECT().Count().Return(0).Times(1),
	)

	operations := []workload.Operation{
		{Op: "insert", Key: "a", Value: "1"},
		{Op: "INSERT", Key: "a", Value: "2"},
		{Op: "search", Key: "a"},
		{Op: "edit", Key: "a", To: "b"},
		{Op: "edit", Key: "x", To: "y"},
		{Op: " at ", Key: "c"},
		{Op: "remove", Key: "z"},
		{Op: "clear"},
	}

	result, err := workload.Run(m, operations, logger.New(logCategory))
	assert.Nil(t, err, "wrong run error")
	assert.Equal(t, workload.Result{
		Applied:  8,
		Hits:     5,
		Misses:   2,
		Failures: 1,
		Count:    0,
	}, result, "wrong result")
}

func TestRunUnknownOperation(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMap(ctl)
	m.EXPECT().Insert("a", "1").Return(true).Times(1)
	m.EXPECT().Count().Return(1).Times(1)

	operations := []workload.Operation{
		{Op: "insert", Key: "a", Value: "1"},
		{Op: "rename", Key: "a", To: "b"},
		{Op: "insert", Key: "never", Value: "reached"},
	}

	result, err := workload.Run(m, operations, logger.New(logCategory))
	assert.Equal(t, fault.ErrUnknownOperation, err, "wrong run error")
	assert.Equal(t, 1, result.Applied, "wrong applied count")
	assert.Equal(t, 1, result.Count, "wrong item count")
}

func TestRunMissingKey(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMap(ctl)
	m.EXPECT().Count().Return(0).Times(2)

	_, err := workload.Run(m, []workload.Operation{{Op: "remove"}}, logger.New(logCategory))
	assert.Equal(t, fault.ErrMissingOperationKey, err, "missing key accepted")

	_, err = workload.Run(m, []workload.Operation{{Op: "edit", Key: "a"}}, logger.New(logCategory))
	assert.Equal(t, fault.ErrMissingOperationKey, err, "missing destination accepted")
}

func TestRunEmptyKeyIsMissing(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	m := workload.NewTreeMap(nil)
	assert.True(t, m.Insert("", "empty"), "tree rejected empty key")

	result, err := workload.Run(m, []workload.Operation{
		{Op: "insert", Key: "a", Value: "1"},
		{Op: "search", Key: ""},
		{Op: "insert", Key: "b", Value: "2"},
	}, logger.New(logCategory))
	assert.Equal(t, fault.ErrMissingOperationKey, err, "empty key accepted")
	assert.Equal(t, 1, result.Applied, "run did not stop at the empty key")
	assert.Equal(t, 2, result.Count, "wrong item count")

	v, ok := m.Get("")
	assert.True(t, ok, "empty key lost")
	assert.Equal(t, "empty", v)
}

func TestRunOnTree(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	m := workload.NewTreeMap(nil)

	operations := []workload.Operation{
		{Op: "insert", Key: "10", Value: "ten"},
		{Op: "insert", Key: "20", Value: "twenty"},
		{Op: "insert", Key: "30", Value: "thirty"},
		{Op: "insert", Key: "30", Value: "again"},
		{Op: "edit", Key: "10", To: "15"},
		{Op: "edit", Key: "15", To: "20"},
		{Op: "at", Key: "40"},
		{Op: "remove", Key: "20"},
		{Op: "search", Key: "20"},
	}

	result, err := workload.Run(m, operations, logger.New(logCategory))
	assert.Nil(t, err, "wrong run error")
	assert.Equal(t, 9, result.Applied)
	assert.Equal(t, 6, result.Hits)
	assert.Equal(t, 2, result.Misses)
	assert.Equal(t, 1, result.Failures)
	assert.Equal(t, 3, result.Count)

	tree := m.Tree()
	assert.Nil(t, tree.Check(), "inconsistent tree")

	v, ok := tree.Get("15")
	assert.True(t, ok, "renamed key missing")
	assert.Equal(t, "ten", v, "renamed value lost")

	v, ok = tree.Get("30")
	assert.True(t, ok)
	assert.Equal(t, "thirty", v, "duplicate insert overwrote value")

	v, ok = tree.Get("40")
	assert.True(t, ok, "at did not create key")
	assert.Equal(t, "", v)
}
