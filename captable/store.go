// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package captable

import (
	"github.com/bitmark-inc/captabled/fault"
	"github.com/bitmark-inc/captabled/identifier"
	"github.com/bitmark-inc/captabled/record"
	"github.com/bitmark-inc/captabled/storage"
)

// source of records: an open transaction or the committed store
type reader interface {
	Get(storage.Handle, []byte) []byte
}

// read-only view of committed data
type committed struct{}

func (committed) Get(h storage.Handle, key []byte) []byte {
	return h.Get(key)
}

func fetch(r reader, pool storage.Handle, key []byte, notFound error) (record.Record, error) {
	packed := r.Get(pool, key)
	if nil == packed {
		return nil, notFound
	}
	item, _, err := record.Packed(packed).Unpack()
	if nil != err {
		fault.Panicf("captable: corrupt record: %x  error: %s", packed, err)
	}
	return item, nil
}

func getIssuer(r reader, id identifier.Identifier) (*record.Issuer, error) {
	item, err := fetch(r, storage.Pool.Issuers, id[:], fault.IssuerNotFound)
	if nil != err {
		return nil, err
	}
	issuer, ok := item.(*record.Issuer)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return issuer, nil
}

func getStockClass(r reader, id identifier.Identifier) (*record.StockClass, error) {
	item, err := fetch(r, storage.Pool.StockClasses, id[:], fault.StockClassNotFound)
	if nil != err {
		return nil, err
	}
	class, ok := item.(*record.StockClass)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return class, nil
}

func getStakeholder(r reader, id identifier.Identifier) (*record.Stakeholder, error) {
	item, err := fetch(r, storage.Pool.Stakeholders, id[:], fault.StakeholderNotFound)
	if nil != err {
		return nil, err
	}
	stakeholder, ok := item.(*record.Stakeholder)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return stakeholder, nil
}

func getStockPlan(r reader, id identifier.Identifier) (*record.StockPlan, error) {
	item, err := fetch(r, storage.Pool.StockPlans, id[:], fault.StockPlanNotFound)
	if nil != err {
		return nil, err
	}
	plan, ok := item.(*record.StockPlan)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return plan, nil
}

func getStockPosition(r reader, key record.PositionKey) (*record.StockPosition, error) {
	item, err := fetch(r, storage.Pool.StockPositions, key.Bytes(), fault.PositionNotFound)
	if nil != err {
		return nil, err
	}
	position, ok := item.(*record.StockPosition)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return position, nil
}

func getConvertiblePosition(r reader, key record.PositionKey) (*record.ConvertiblePosition, error) {
	item, err := fetch(r, storage.Pool.ConvertiblePositions, key.Bytes(), fault.PositionNotFound)
	if nil != err {
		return nil, err
	}
	position, ok := item.(*record.ConvertiblePosition)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return position, nil
}

func getEquityCompensationPosition(r reader, key record.EquityCompensationKey) (*record.EquityCompensationPosition, error) {
	item, err := fetch(r, storage.Pool.EquityCompensationPositions, key.Bytes(), fault.PositionNotFound)
	if nil != err {
		return nil, err
	}
	position, ok := item.(*record.EquityCompensationPosition)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return position, nil
}

func getWarrantPosition(r reader, key record.PositionKey) (*record.WarrantPosition, error) {
	item, err := fetch(r, storage.Pool.WarrantPositions, key.Bytes(), fault.PositionNotFound)
	if nil != err {
		return nil, err
	}
	position, ok := item.(*record.WarrantPosition)
	if !ok {
		return nil, fault.WrongRecordType
	}
	return position, nil
}

// overwrite an existing record
func put(trx storage.Transaction, pool storage.Handle, key []byte, item record.Record) error {
	packed, err := item.Pack()
	if nil != err {
		return err
	}
	trx.Put(pool, key, packed)
	return nil
}

// write a new record, failing if the key is taken
func create(trx storage.Transaction, pool storage.Handle, key []byte, item record.Record) error {
	packed, err := item.Pack()
	if nil != err {
		return err
	}
	return trx.Create(pool, key, packed)
}

// belongsTo - the single check that a record is owned by its parent
func belongsTo(parentId identifier.Identifier, ownerId identifier.Identifier, mismatch error) error {
	if parentId != ownerId {
		return mismatch
	}
	return nil
}
