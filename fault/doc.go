// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each ledger error so callers can
// compare by identity instead of resorting to partial string matches.
// Errors are grouped into classes so that an RPC client can decide how
// to react without knowing every individual value.
package fault
