// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC access to the cap table
//
// every transition is exposed as <Type>.<Operation> taking the caller
// principal in its arguments and returning the event receipt; read
// requests return the stored records
package rpc
