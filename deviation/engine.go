package deviation

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-coldchain-ledger/inter"
)

// Config holds the engine parameters fixed at construction. The alert fee
// is only the initial value; the bound authority may change it at runtime
// via SetAlertFee.
type Config struct {
	// MaxAlerts caps the sequential alert id space.
	MaxAlerts uint64

	// AlertFee is the fee (in native units) routed from the reporting oracle
	// to the bound authority on every successful trigger.
	AlertFee uint64
}

// Engine is the Deviation Alert Engine. It owns batch rules, the alert log,
// the per-batch alert index and the monotonic deviation counters.
//
// Not safe for concurrent use; calls are serialized by the environment.
// Every operation validates completely before its first mutation.
type Engine struct {
	cfg       Config
	authority inter.Binding
	transfer  inter.TransferFn

	alertFee uint64
	nextID   AlertID

	rules         map[BatchID]BatchRules
	alerts        map[AlertID]Alert
	alertsByBatch map[BatchID][]AlertID
	deviations    map[BatchID]uint64
}

// New creates an empty engine. A nil transfer falls back to
// inter.NopTransfer.
func New(cfg Config, transfer inter.TransferFn) *Engine {
	if transfer == nil {
		transfer = inter.NopTransfer
	}
	return &Engine{
		cfg:           cfg,
		transfer:      transfer,
		alertFee:      cfg.AlertFee,
		rules:         make(map[BatchID]BatchRules),
		alerts:        make(map[AlertID]Alert),
		alertsByBatch: make(map[BatchID][]AlertID),
		deviations:    make(map[BatchID]uint64),
	}
}

// BindAuthority sets the engine's oracle authority exactly once.
func (e *Engine) BindAuthority(p common.Address) error {
	return e.authority.Bind(p)
}

// Authority returns the bound oracle authority and whether one is set.
func (e *Engine) Authority() (common.Address, bool) {
	return e.authority.Get()
}

// SetBatchRules installs the compliance envelope for a batch id. Field
// validation runs first, the authority check last, mirroring the mint
// ordering convention. Re-setting existing rules is allowed and simply
// overwrites: there is deliberately no created-once guard here, so the
// oracle can update rules as a batch moves through the chain.
func (e *Engine) SetBatchRules(ctx inter.Ctx, batchID BatchID, minTemp, maxTemp int64, threshold uint64, gracePeriod uint64) error {
	if batchID == 0 {
		return ErrInvalidBatchID
	}
	if minTemp < MinTemp || minTemp > MaxTemp {
		return ErrInvalidMinTemp
	}
	if maxTemp < MinTemp || maxTemp > MaxTemp {
		return ErrInvalidMaxTemp
	}
	if maxTemp <= minTemp {
		return ErrInvalidMaxTemp
	}
	if threshold == 0 {
		return ErrInvalidThreshold
	}
	if gracePeriod > MaxGracePeriod {
		return ErrInvalidGracePeriod
	}
	if !e.authority.Is(ctx.Caller) {
		return ErrNotAuthorized
	}
	e.rules[batchID] = BatchRules{
		MinTemp:            minTemp,
		MaxTemp:            maxTemp,
		DeviationThreshold: threshold,
		GracePeriod:        idx.Block(gracePeriod),
		Active:             true,
	}
	return nil
}

// TriggerAlert records a temperature deviation for a batch. The reading
// must lie strictly outside the batch's [MinTemp, MaxTemp] band: an oracle
// cannot raise an alert for a compliant reading.
//
// On success the alert fee is charged from the caller to the authority, a
// sequential alert id is allocated, the per-batch index and the monotonic
// deviation counter are updated, and the alert is stored open.
func (e *Engine) TriggerAlert(ctx inter.Ctx, batchID BatchID, tempRecorded int64, sensorID, location string, severity uint64, alertType AlertType) (AlertID, error) {
	if uint64(e.nextID) >= e.cfg.MaxAlerts {
		return 0, ErrMaxAlertsExceeded
	}
	rules, ok := e.rules[batchID]
	if !ok {
		return 0, ErrInvalidBatchID
	}
	if !rules.Active {
		return 0, ErrBatchNotActive
	}
	if tempRecorded < MinTemp || tempRecorded > MaxTemp {
		return 0, ErrInvalidTemp
	}
	if len(sensorID) == 0 || len(sensorID) > MaxSensorIDLen {
		return 0, ErrInvalidSensorID
	}
	if len(location) == 0 || len(location) > MaxLocationLen {
		return 0, ErrInvalidLocation
	}
	if severity > MaxSeverity {
		return 0, ErrInvalidSeverity
	}
	if !alertType.Valid() {
		return 0, ErrInvalidAlertType
	}
	auth, ok := e.authority.Get()
	if !ok || auth != ctx.Caller {
		return 0, ErrNotAuthorized
	}
	// The core business rule: a reading inside the compliance band is not a
	// deviation and must not enter the alert log.
	if tempRecorded >= rules.MinTemp && tempRecorded <= rules.MaxTemp {
		return 0, ErrInvalidTemp
	}

	err := e.transfer(inter.Transfer{Amount: e.alertFee, From: ctx.Caller, To: auth})
	if err != nil {
		return 0, err
	}

	id := e.nextID
	e.alerts[id] = Alert{
		BatchID:        batchID,
		TempRecorded:   tempRecorded,
		Timestamp:      ctx.Height,
		SensorID:       sensorID,
		Location:       location,
		Severity:       severity,
		Type:           alertType,
		Open:           true,
		PenaltyApplied: false,
	}
	e.alertsByBatch[batchID] = append(e.alertsByBatch[batchID], id)
	e.deviations[batchID]++
	e.nextID++
	return id, nil
}

// ResolveAlert closes an open alert and stamps the caller-supplied penalty
// decision. Authority only; a closed alert cannot be reopened or restamped.
//
// Resolving moves no money: penalty execution belongs to the incentive
// engine's SlashStake and is the external orchestrator's job, since the
// engines never call each other.
func (e *Engine) ResolveAlert(ctx inter.Ctx, id AlertID, applyPenalty bool) error {
	a, ok := e.alerts[id]
	if !ok {
		return ErrAlertNotFound
	}
	if !e.authority.Is(ctx.Caller) {
		return ErrNotAuthorized
	}
	if !a.Open {
		return ErrAlertClosed
	}
	a.Open = false
	a.PenaltyApplied = applyPenalty
	e.alerts[id] = a
	return nil
}

// SetAlertFee replaces the alert fee. Authority only.
func (e *Engine) SetAlertFee(ctx inter.Ctx, fee uint64) error {
	if !e.authority.Is(ctx.Caller) {
		return ErrNotAuthorized
	}
	e.alertFee = fee
	return nil
}

// Rules returns the compliance envelope installed for a batch id.
func (e *Engine) Rules(batchID BatchID) (BatchRules, bool) {
	r, ok := e.rules[batchID]
	return r, ok
}

// Alert returns the alert record for id.
func (e *Engine) Alert(id AlertID) (Alert, bool) {
	a, ok := e.alerts[id]
	return a, ok
}

// AlertsForBatch returns the ids of all alerts ever raised for a batch, in
// trigger order. The returned slice is a copy.
func (e *Engine) AlertsForBatch(batchID BatchID) []AlertID {
	ids := e.alertsByBatch[batchID]
	out := make([]AlertID, len(ids))
	copy(out, ids)
	return out
}

// AlertCount returns the number of alerts ever triggered.
func (e *Engine) AlertCount() uint64 {
	return uint64(e.nextID)
}

// DeviationCount returns the monotonic deviation counter of a batch. It
// never decreases, not even when alerts are resolved: it is an audit
// signal, not a liveness flag.
func (e *Engine) DeviationCount(batchID BatchID) uint64 {
	return e.deviations[batchID]
}

// IsBatchInDeviation reports whether a batch has ever deviated.
func (e *Engine) IsBatchInDeviation(batchID BatchID) bool {
	return e.deviations[batchID] > 0
}

// AlertFee returns the current alert fee.
func (e *Engine) AlertFee() uint64 {
	return e.alertFee
}
