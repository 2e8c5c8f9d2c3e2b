/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddbcompat

import (
	"context"
	"fmt"
	"sync"

	"github.com/suparena/ddbcompat/fixture"
)

// Schema keys for the shared table pool. Each key names a fixed
// partition/sort key type combination.
const (
	TableS  = "s"  // string hash key only
	TableSS = "ss" // string hash, string range
	TableB  = "b"  // binary hash key only
	TableSB = "sb" // string hash, binary range
	TableSN = "sn" // string hash, number range
)

var schemas = map[string]fixture.KeySchema{
	TableS:  fixture.SchemaS,
	TableSS: fixture.SchemaSS,
	TableB:  fixture.SchemaB,
	TableSB: fixture.SchemaSB,
	TableSN: fixture.SchemaSN,
}

// SharedTables is a thread-safe pool of fixture tables shared by all
// checks in a run. Tables are created the first time a schema key is
// requested and torn down once by Cleanup, so a run touching five
// checks does not pay for five table creations per schema.
type SharedTables struct {
	mu     sync.Mutex
	api    fixture.API
	tables map[string]string
	filled string
}

// NewSharedTables creates an empty pool backed by the given client.
func NewSharedTables(api fixture.API) *SharedTables {
	return &SharedTables{
		api:    api,
		tables: make(map[string]string),
	}
}

// Table returns the name of the shared table for the given schema key,
// creating it on first use.
func (st *SharedTables) Table(ctx context.Context, key string) (string, error) {
	schema, ok := schemas[key]
	if !ok {
		return "", fmt.Errorf("unknown table schema key %q", key)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if name, exists := st.tables[key]; exists {
		return name, nil
	}
	name := fixture.UniqueTableName()
	if err := fixture.CreateTable(ctx, st.api, name, schema); err != nil {
		return "", err
	}
	st.tables[key] = name
	return name, nil
}

// Filled returns the name of the shared pre-filled table, creating and
// loading it on first use.
func (st *SharedTables) Filled(ctx context.Context) (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.filled != "" {
		return st.filled, nil
	}
	name, err := fixture.CreateFilledTable(ctx, st.api)
	if err != nil {
		return "", err
	}
	st.filled = name
	return name, nil
}

// Cleanup deletes every table the pool created. It keeps sweeping past
// individual failures and returns the first error encountered.
func (st *SharedTables) Cleanup(ctx context.Context) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	var firstErr error
	for key, name := range st.tables {
		if err := fixture.DeleteTable(ctx, st.api, name); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(st.tables, key)
	}
	if st.filled != "" {
		if err := fixture.DeleteTable(ctx, st.api, st.filled); err != nil && firstErr == nil {
			firstErr = err
		}
		st.filled = ""
	}
	return firstErr
}
