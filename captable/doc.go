// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package captable - the issuer capitalization table state machine
//
// every operation runs as one storage transaction: the records it
// names are read (including values written earlier in the same
// transaction), all invariants are checked, the records are written
// back and exactly one event is appended.  Any failure aborts the
// transaction so no partial mutation is ever committed.
//
// operations are serialised by a package lock; the counters they
// check are always re-read inside the transaction
package captable
