// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

// Optional - a nullable reference to a parent entity
//
// nil means "no parent"; the zero identifier is a valid value here
type Optional = *Identifier

// Some - make an optional reference
func Some(id Identifier) Optional {
	return &id
}

// OrZero - the zero filled form used where a fixed shape is required
func OrZero(o Optional) Identifier {
	if nil == o {
		return Zero
	}
	return *o
}
