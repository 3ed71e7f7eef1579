// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// issuer errors
var (
	AlreadyInitialized = ExistsError("issuer has already been initialized")
)

// stock class errors
var (
	InvalidClassType             = LengthError("stock class type length is invalid")
	SharesAuthorizedCannotBeZero = InvalidError("shares authorized cannot be zero")
)

// stock errors, also used for equity compensation
var (
	InsufficientShares = InvalidError("insufficient shares available")
	InvalidQuantity    = InvalidError("quantity must be greater than zero")
	InvalidSharePrice  = InvalidError("share price must be greater than zero")
)

// stock plan errors
var (
	InvalidStockClassCount  = LengthError("stock class count is invalid")
	StockClassCountMismatch = InvalidError("stock class count mismatch")
	StockClassIdMismatch    = InvalidError("stock class id mismatch")
)

// convertible errors
var (
	InvalidAmount = InvalidError("investment amount must be greater than zero")
)

// equity compensation errors
var (
	InvalidStakeholder = InvalidError("position must belong to same stakeholder")
	QuantityMismatch   = InvalidError("stock position quantity must match exercise quantity")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised         = ExistsError("already initialised")
	CertificateFileExists      = ExistsError("certificate file already exists")
	DatabaseIsNotSet           = ProcessError("database is not set")
	IncompatibleDatabase       = ProcessError("incompatible database version")
	InvalidCount               = InvalidError("invalid count")
	InvalidIdentifier          = LengthError("invalid identifier")
	InvalidIpAddress           = InvalidError("invalid IP address")
	InvalidLoggerChannel       = ProcessError("invalid logger channel")
	InvalidPrincipal           = LengthError("invalid principal")
	InvalidPrivateKeyFile      = InvalidError("invalid private key file")
	InvalidPublicKey           = LengthError("invalid public key")
	InvalidPublicKeyFile       = InvalidError("invalid public key file")
	InvalidStructPointer       = InvalidError("invalid struct pointer")
	IssuerNotFound             = NotFoundError("issuer not found")
	KeyFileAlreadyExists       = ExistsError("key file already exists")
	MissingCaller              = AuthorisationError("missing caller")
	MissingParameters          = InvalidError("missing parameters")
	NotAuthorised              = AuthorisationError("caller is not the issuer authority")
	NotAvailableInReadOnlyMode = ProcessError("not available in read-only mode")
	NotInitialised             = NotFoundError("not initialised")
	NotRecordPack              = InvalidError("not record pack")
	NotTransactionPack         = InvalidError("not transaction pack")
	PositionNotFound           = NotFoundError("position not found")
	RateLimiting               = InvalidError("rate limiting")
	RecordExists               = ExistsError("record already exists")
	ReservedTransactionType    = InvalidError("reserved transaction type")
	StakeholderNotFound        = NotFoundError("stakeholder not found")
	StockClassNotFound         = NotFoundError("stock class not found")
	StockPlanNotFound          = NotFoundError("stock plan not found")
	TransactionInUse           = ProcessError("transaction already in use")
	TransactionNotInUse        = ProcessError("transaction not in use")
	WrongRecordType            = InvalidError("wrong record type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
