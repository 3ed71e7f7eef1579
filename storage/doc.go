// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger record store
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available pools.
//
// All writes go through a Transaction which accumulates a single
// LevelDB batch; nothing is visible to readers of the committed store
// until Commit writes that batch atomically.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = 16 byte opaque identifier
// 4. sequence     = big endian uint64 (8 bytes)
// 5. record       = Varint64(tag) ++ fields (see package record)
//
// Issuers:
//
//   I ++ issuer id                          - issuer record
//   U ++ issuer id                          - authority principal for the issuer
//
// Issuer scoped entities:
//
//   C ++ stock class id                     - stock class record
//   S ++ stakeholder id                     - stakeholder record
//   P ++ stock plan id                      - stock plan record
//
// Positions:
//
//   K ++ stakeholder id ++ security id      - stock position record
//   X ++ stock class id ++ stakeholder id ++ security id
//                                           - stock class index, data: quantity (big endian uint64)
//   V ++ stakeholder id ++ security id      - convertible position record
//   Q ++ stock class id ++ stakeholder id ++ security id
//                                           - equity compensation position record
//   W ++ stakeholder id ++ security id      - warrant position record
//
// Events:
//
//   E ++ sequence                           - packed event
//   N ++ "events"                           - next event sequence (big endian uint64)
//
// Testing:
//   Z ++ key                                - testing data
package storage
