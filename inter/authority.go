package inter

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// Binding errors.
var (
	// ErrNullAuthority is returned when binding to the zero (burn) address.
	// The zero address can never authorize anything, so binding to it would
	// permanently brick every privileged operation of the engine.
	ErrNullAuthority = errors.New("authority: null principal")

	// ErrAlreadyBound is returned by Bind after the first successful call.
	ErrAlreadyBound = errors.New("authority: already bound")
)

// Binding is a one-time-settable principal slot. Each engine owns one and
// consults it before allowing privileged calls (fee changes, rule setting,
// alert resolution, slashing).
//
// The slot is immutable once set: rebinding is rejected rather than
// overwritten, which removes a whole class of governance-takeover bugs.
// The zero value is an unset binding, ready to use.
type Binding struct {
	authority common.Address
	bound     bool
}

// Bind sets the authority exactly once. It rejects the zero address and any
// attempt to rebind, leaving the existing binding untouched on failure.
func (b *Binding) Bind(p common.Address) error {
	if p == (common.Address{}) {
		return ErrNullAuthority
	}
	if b.bound {
		return ErrAlreadyBound
	}
	b.authority = p
	b.bound = true
	return nil
}

// IsSet reports whether an authority has been bound.
func (b *Binding) IsSet() bool {
	return b.bound
}

// Get returns the bound authority and whether one is set.
func (b *Binding) Get() (common.Address, bool) {
	return b.authority, b.bound
}

// Is reports whether p is the bound authority. An unset binding matches
// nobody.
func (b *Binding) Is(p common.Address) bool {
	return b.bound && b.authority == p
}
