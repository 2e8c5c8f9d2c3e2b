/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/suparena/ddbcompat/errors"
)

func noop(context.Context, *Env) error { return nil }

func TestRegisterAndGet(t *testing.T) {
	Register(Check{Name: "reg_get_probe", Description: "probe", Fn: noop})

	c, err := Get("reg_get_probe")
	require.NoError(t, err)
	require.Equal(t, "reg_get_probe", c.Name)
	require.Equal(t, "probe", c.Description)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no_such_check")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrCheckNotFound)
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	Register(Check{Name: "order_a", Fn: noop})
	Register(Check{Name: "order_b", Fn: noop})

	var names []string
	for _, c := range List() {
		names = append(names, c.Name)
	}
	idxA, idxB := -1, -1
	for i, n := range names {
		switch n {
		case "order_a":
			idxA = i
		case "order_b":
			idxB = i
		}
	}
	require.GreaterOrEqual(t, idxA, 0)
	require.Greater(t, idxB, idxA)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Check{Name: "dup_probe", Fn: noop})
	require.Panics(t, func() {
		Register(Check{Name: "dup_probe", Fn: noop})
	})
}

func TestRegisterEmptyNamePanics(t *testing.T) {
	require.Panics(t, func() {
		Register(Check{Fn: noop})
	})
}

func TestRegisterNilFnPanics(t *testing.T) {
	require.Panics(t, func() {
		Register(Check{Name: "nil_fn_probe"})
	})
}
