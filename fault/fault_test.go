// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/captabled/fault"
)

// test that the ledger errors fall into the expected classes
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorisation bool
		exists        bool
		invalid       bool
		length        bool
		notFound      bool
		process       bool
	}{
		{fault.NotAuthorised, true, false, false, false, false, false},
		{fault.MissingCaller, true, false, false, false, false, false},
		{fault.AlreadyInitialized, false, true, false, false, false, false},
		{fault.RecordExists, false, true, false, false, false, false},
		{fault.InsufficientShares, false, false, true, false, false, false},
		{fault.InvalidQuantity, false, false, true, false, false, false},
		{fault.InvalidSharePrice, false, false, true, false, false, false},
		{fault.InvalidAmount, false, false, true, false, false, false},
		{fault.QuantityMismatch, false, false, true, false, false, false},
		{fault.InvalidStakeholder, false, false, true, false, false, false},
		{fault.SharesAuthorizedCannotBeZero, false, false, true, false, false, false},
		{fault.StockClassCountMismatch, false, false, true, false, false, false},
		{fault.StockClassIdMismatch, false, false, true, false, false, false},
		{fault.InvalidStockClassCount, false, false, false, true, false, false},
		{fault.InvalidIdentifier, false, false, false, true, false, false},
		{fault.IssuerNotFound, false, false, false, false, true, false},
		{fault.PositionNotFound, false, false, false, false, true, false},
		{fault.TransactionInUse, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorisation(err) != e.authorisation {
			t.Errorf("%d: expected 'authorisation' == %v for err = %v", i, e.authorisation, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// distinct conditions must remain distinguishable by identity
func TestIdentity(t *testing.T) {
	if fault.InvalidQuantity == fault.InsufficientShares {
		t.Fatal("zero quantity and insufficient shares must differ")
	}
	var err error = fault.InvalidQuantity
	if err != fault.InvalidQuantity {
		t.Errorf("identity comparison failed for: %v", err)
	}
}
