package inter

// Error is a categorical operation failure. Every engine surfaces failures
// as a fixed set of *Error sentinels whose Code values match the on-chain
// contract's numeric taxonomy. The codes are part of the
// compatibility surface, not just diagnostics.
//
// Sentinels are compared by identity (errors.Is), so two sentinels may share
// a numeric code while remaining distinguishable in Go.
type Error struct {
	Code uint16 // numeric code from the engine's error table
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}
