// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

// TxType - the kind of a ledger event
//
// numbering is stable; new kinds are only ever appended before typeLimit
type TxType uint64

// the event kinds
const (
	Invalid                              = TxType(iota)
	IssuerAuthorizedSharesAdjustment     = TxType(iota)
	StockClassAuthorizedSharesAdjustment = TxType(iota)
	StockAcceptance                      = TxType(iota) // reserved
	StockCancellation                    = TxType(iota) // reserved
	StockIssuance                        = TxType(iota)
	StockReissuance                      = TxType(iota) // reserved
	StockRepurchase                      = TxType(iota) // reserved
	StockRetraction                      = TxType(iota) // reserved
	StockTransfer                        = TxType(iota) // reserved
	ConvertibleIssuance                  = TxType(iota)
	EquityCompensationIssuance           = TxType(iota)
	StockPlanPoolAdjustment              = TxType(iota)
	WarrantIssuance                      = TxType(iota)
	EquityCompensationExercise           = TxType(iota)
	IssuerInitialization                 = TxType(iota)
	StockClassCreation                   = TxType(iota)
	StakeholderCreation                  = TxType(iota)
	StockPlanCreation                    = TxType(iota)

	// this item must be last
	typeLimit = TxType(iota)
)

var typeNames = [...]string{
	Invalid:                              "Invalid",
	IssuerAuthorizedSharesAdjustment:     "IssuerAuthorizedSharesAdjustment",
	StockClassAuthorizedSharesAdjustment: "StockClassAuthorizedSharesAdjustment",
	StockAcceptance:                      "StockAcceptance",
	StockCancellation:                    "StockCancellation",
	StockIssuance:                        "StockIssuance",
	StockReissuance:                      "StockReissuance",
	StockRepurchase:                      "StockRepurchase",
	StockRetraction:                      "StockRetraction",
	StockTransfer:                        "StockTransfer",
	ConvertibleIssuance:                  "ConvertibleIssuance",
	EquityCompensationIssuance:           "EquityCompensationIssuance",
	StockPlanPoolAdjustment:              "StockPlanPoolAdjustment",
	WarrantIssuance:                      "WarrantIssuance",
	EquityCompensationExercise:           "EquityCompensationExercise",
	IssuerInitialization:                 "IssuerInitialization",
	StockClassCreation:                   "StockClassCreation",
	StakeholderCreation:                  "StakeholderCreation",
	StockPlanCreation:                    "StockPlanCreation",
}

// String - name of the kind
func (t TxType) String() string {
	if t >= typeLimit {
		return "Unknown"
	}
	return typeNames[t]
}

// IsReserved - named kinds with no operation behind them
func (t TxType) IsReserved() bool {
	switch t {
	case StockAcceptance, StockCancellation, StockReissuance, StockRepurchase, StockRetraction, StockTransfer:
		return true
	default:
		return false
	}
}

func txTypeFromString(s string) (TxType, bool) {
	for t, name := range typeNames {
		if name == s && Invalid != TxType(t) {
			return TxType(t), true
		}
	}
	return Invalid, false
}
