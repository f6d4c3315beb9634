// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedmap/fault"
)

//go:generate mockgen -source=workload.go -destination=mocks/map.go -package=mocks

// LoggerPrefix - channel name for the runner's log
const LoggerPrefix = "workload"

// Map - the map operations needed by the runner
type Map interface {
	Insert(key string, value string) bool
	Remove(key string) bool
	Edit(from string, to string) error
	Get(key string) (string, bool)
	GetOrCreate(key string) string
	Clear()
	Count() int
}

// Operation - a single step of a workload
//
// Key is required by every op except "clear" and To is required by
// "edit"; an empty string means the field was not given, so the empty
// key cannot be used in a workload even though the map accepts it
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   string `gluamapper:"key" json:"key,omitempty"`
	Value string `gluamapper:"value" json:"value,omitempty"`
	To    string `gluamapper:"to" json:"to,omitempty"`
}

// Result - summary of a run
type Result struct {
	Applied  int `json:"applied"`  // operations executed
	Hits     int `json:"hits"`     // operations that found or changed something
	Misses   int `json:"misses"`   // no-ops: duplicate insert, absent key
	Failures int `json:"failures"` // rejected edits
	Count    int `json:"count"`    // items left in the map
}

// Run - apply each operation in order
//
// stops at the first malformed operation, returning the partial result
func Run(m Map, operations []Operation, log *logger.L) (Result, error) {
	result := Result{}

	for i, operation := range operations {
		op := strings.ToLower(strings.TrimSpace(operation.Op))

		if "clear" != op && "" == operation.Key {
			log.Errorf("operation[%d]: %q has no key", i, operation.Op)
			result.Count = m.Count()
			return result, fault.ErrMissingOperationKey
		}

		hit := false
		switch op {
		case "insert":
			hit = m.Insert(operation.Key, operation.Value)
			log.Debugf("insert: %q → %q  added: %t", operation.Key, operation.Value, hit)

		case "remove":
			hit = m.Remove(operation.Key)
			log.Debugf("remove: %q  removed: %t", operation.Key, hit)

		case "edit":
			if "" == operation.To {
				log.Errorf("operation[%d]: edit of %q has no destination", i, operation.Key)
				result.Count = m.Count()
				return result, fault.ErrMissingOperationKey
			}
			err := m.Edit(operation.Key, operation.To)
			if nil != err {
				log.Warnf("edit: %q → %q  error: %s", operation.Key, operation.To, err)
				result.Applied += 1
				result.Failures += 1
				continue
			}
			hit = true
			log.Debugf("edit: %q → %q", operation.Key, operation.To)

		case "search":
			var value string
			value, hit = m.Get(operation.Key)
			log.Debugf("search: %q  found: %t  value: %q", operation.Key, hit, value)

		case "at":
			value := m.GetOrCreate(operation.Key)
			hit = true
			log.Debugf("at: %q  value: %q", operation.Key, value)

		case "clear":
			m.Clear()
			hit = true
			log.Debug("clear")

		default:
			log.Errorf("operation[%d]: unknown operation: %q", i, operation.Op)
			result.Count = m.Count()
			return result, fault.ErrUnknownOperation
		}

		result.Applied += 1
		if hit {
			result.Hits += 1
		} else {
			result.Misses += 1
		}
	}

	result.Count = m.Count()
	log.Infof("applied: %d  hits: %d  misses: %d  failures: %d  count: %d",
		result.Applied, result.Hits, result.Misses, result.Failures, result.Count)

	return result, nil
}
