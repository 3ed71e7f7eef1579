// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable

import (
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/record"
)

// add quantity to an issued counter without passing its authorized limit
//
// overflow counts as exceeding the limit
func addIssued(issued uint64, authorized uint64, quantity uint64) (uint64, error) {
	total := issued + quantity
	if total < issued || total > authorized {
		return 0, fault.InsufficientShares
	}
	return total, nil
}

// issueShares - increment the class and issuer counters together
//
// neither record is modified unless both increments are valid
func issueShares(class *record.StockClass, issuer *record.Issuer, quantity uint64) error {
	classIssued, err := addIssued(class.SharesIssued, class.SharesAuthorized, quantity)
	if nil != err {
		return err
	}
	issuerIssued, err := addIssued(issuer.SharesIssued, issuer.SharesAuthorized, quantity)
	if nil != err {
		return err
	}
	class.SharesIssued = classIssued
	issuer.SharesIssued = issuerIssued
	return nil
}

// subtract quantity from a remaining counter, never below zero
func release(remaining uint64, quantity uint64) (uint64, error) {
	if quantity > remaining {
		return 0, fault.InsufficientShares
	}
	return remaining - quantity, nil
}
