package deviation

import (
	"github.com/rony4d/go-coldchain-ledger/inter"
)

// The deviation engine error table, matching the on-chain contract's
// numeric taxonomy. ErrAlertClosed takes code 113 from the contract's
// "invalid update parameter" slot: resolving a closed alert is the only
// invalid update the engine can see.
var (
	ErrNotAuthorized      = &inter.Error{Code: 100, Msg: "deviation: not authorized"}
	ErrInvalidBatchID     = &inter.Error{Code: 101, Msg: "deviation: invalid batch id"}
	ErrInvalidTemp        = &inter.Error{Code: 102, Msg: "deviation: temperature out of range or within compliance band"}
	ErrInvalidMinTemp     = &inter.Error{Code: 103, Msg: "deviation: min temperature out of range"}
	ErrInvalidMaxTemp     = &inter.Error{Code: 104, Msg: "deviation: max temperature invalid"}
	ErrInvalidThreshold   = &inter.Error{Code: 105, Msg: "deviation: threshold must be positive"}
	ErrAlertNotFound      = &inter.Error{Code: 107, Msg: "deviation: alert not found"}
	ErrBatchNotActive     = &inter.Error{Code: 112, Msg: "deviation: batch rules not active"}
	ErrAlertClosed        = &inter.Error{Code: 113, Msg: "deviation: alert already closed"}
	ErrMaxAlertsExceeded  = &inter.Error{Code: 114, Msg: "deviation: max alerts exceeded"}
	ErrInvalidAlertType   = &inter.Error{Code: 115, Msg: "deviation: invalid alert type"}
	ErrInvalidSeverity    = &inter.Error{Code: 116, Msg: "deviation: severity too high"}
	ErrInvalidGracePeriod = &inter.Error{Code: 117, Msg: "deviation: grace period too long"}
	ErrInvalidLocation    = &inter.Error{Code: 118, Msg: "deviation: invalid location"}
	ErrInvalidSensorID    = &inter.Error{Code: 119, Msg: "deviation: invalid sensor id"}
)
