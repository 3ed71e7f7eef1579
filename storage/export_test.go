// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// NewTestTransaction - a transaction over an injected cache
func NewTestTransaction(c Cache) Transaction {
	return newTransaction(c)
}
