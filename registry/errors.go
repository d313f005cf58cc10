package registry

import (
	"github.com/rony4d/go-coldchain-ledger/inter"
)

// The registry error table. Codes 100-120 match the on-chain contract's
// numeric taxonomy; 121-123 are allocated in its unused range for failures
// the contract reports as a bare boolean false.
//
// Note: ErrInvalidVaccineType and ErrInvalidManufacturer share code 114, as
// the contract does. They stay distinct sentinels so callers can branch on
// identity with errors.Is.
var (
	ErrNotAuthorized         = &inter.Error{Code: 100, Msg: "registry: not authorized"}
	ErrBatchNotFound         = &inter.Error{Code: 102, Msg: "registry: batch not found"}
	ErrInvalidStorageTemp    = &inter.Error{Code: 103, Msg: "registry: storage temperature out of range"}
	ErrInvalidDoseCount      = &inter.Error{Code: 111, Msg: "registry: dose count must be positive"}
	ErrInvalidProductionDate = &inter.Error{Code: 112, Msg: "registry: production date in the future"}
	ErrInvalidExpirationDate = &inter.Error{Code: 113, Msg: "registry: expiration date not in the future"}
	ErrInvalidVaccineType    = &inter.Error{Code: 114, Msg: "registry: invalid vaccine type"}
	ErrInvalidManufacturer   = &inter.Error{Code: 114, Msg: "registry: invalid manufacturer"}
	ErrInvalidTransportMode  = &inter.Error{Code: 116, Msg: "registry: invalid transport mode"}
	ErrInvalidLocation       = &inter.Error{Code: 118, Msg: "registry: invalid origin or destination"}
	ErrMaxBatchesExceeded    = &inter.Error{Code: 120, Msg: "registry: max batches exceeded"}
	ErrNotOwner              = &inter.Error{Code: 121, Msg: "registry: caller is not the batch owner"}
	ErrInvalidStatus         = &inter.Error{Code: 122, Msg: "registry: invalid status"}
	ErrAlreadyCompromised    = &inter.Error{Code: 123, Msg: "registry: batch already compromised"}
)
