/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package checks

import (
	"github.com/suparena/ddbcompat/canon"
	errs "github.com/suparena/ddbcompat/errors"
)

// compareItems reports whether actual matches expected as a multiset.
// On divergence it returns a MismatchError carrying the surplus counts
// on each side.
func compareItems(context string, expected, actual []canon.Item) error {
	me, err := canon.NewMultiset(expected)
	if err != nil {
		return err
	}
	ma, err := canon.NewMultiset(actual)
	if err != nil {
		return err
	}
	if me.Equal(ma) {
		return nil
	}
	onlyExpected, onlyActual := me.Diff(ma)
	return errs.NewMismatchError(context, total(onlyExpected), total(onlyActual))
}

func total(m canon.Multiset) int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}
