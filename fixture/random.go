/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixture

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// TableNamePrefix marks every table the harness creates, so leaked
// tables from crashed runs are easy to find and sweep.
const TableNamePrefix = "compat_Test_"

const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(42))
)

// RandomString returns n characters drawn from a fixed alphabet.
// The generator is seeded deterministically so repeated runs exercise
// the same values.
func RandomString(n int) string {
	rngMu.Lock()
	defer rngMu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = randomAlphabet[rng.Intn(len(randomAlphabet))]
	}
	return string(b)
}

// RandomBytes returns n bytes from the shared generator.
func RandomBytes(n int) []byte {
	rngMu.Lock()
	defer rngMu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Intn(256))
	}
	return b
}

// UniqueTableName returns a fresh table name carrying the harness
// prefix, a millisecond timestamp and a random suffix.
func UniqueTableName() string {
	return fmt.Sprintf("%s%d_%s", TableNamePrefix, time.Now().UnixMilli(), RandomString(8))
}
