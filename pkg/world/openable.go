package world

import "strings"

// Openable is the locking and opening capability consumed by the engine:
// a code-gated door guarding a location, or a gate on a container. The
// engine only calls into attempts and manages the associated prompt state.
type Openable interface {
	Nameable

	// Unlock attempts to unlock with an optional code or word.
	Unlock(p *Player, code string) (bool, string)
	// Open attempts to open with an optional code or word.
	Open(p *Player, code string) (bool, string)

	IsOpen() bool
	IsLocked() bool
	// CodeGated reports whether a failed attempt without a code should
	// prompt the player for one.
	CodeGated() bool
	// Reset restores the configured locked/open state.
	Reset()
}

// CodeLock is the standard Openable: it unlocks with a configured code
// word, or by possession of a required inventory item, or freely when
// neither is configured.
type CodeLock struct {
	name    string
	aliases []string

	// Code is the word accepted by unlock and open attempts.
	Code string
	// RequiredItem satisfies attempts while the player carries it.
	RequiredItem string

	UnlockMessage string
	OpenMessage   string
	FailMessage   string

	locked bool
	open   bool

	initLocked bool
	initOpen   bool
}

var _ Openable = (*CodeLock)(nil)

// NewCodeLock creates a locked, closed lock with the given name.
func NewCodeLock(name string, aliases ...string) *CodeLock {
	return &CodeLock{
		name:       name,
		aliases:    aliases,
		locked:     true,
		initLocked: true,
	}
}

func (l *CodeLock) Name() string      { return l.name }
func (l *CodeLock) Aliases() []string { return l.aliases }

func (l *CodeLock) Matches(name string) bool {
	return matchesName(name, l.name, l.aliases)
}

// SetState overrides the configured locked/open state. Called during
// world construction only.
func (l *CodeLock) SetState(locked, open bool) {
	l.locked, l.initLocked = locked, locked
	l.open, l.initOpen = open, open
}

// Unlock attempts to unlock. Unlocking an already-unlocked lock succeeds
// idempotently with the same message. A successful unlock also opens the
// way; it never consumes the required item.
func (l *CodeLock) Unlock(p *Player, code string) (bool, string) {
	if !l.locked {
		l.open = true
		return true, l.UnlockMessage
	}
	if !l.satisfied(p, code) {
		return false, l.FailMessage
	}
	l.locked = false
	l.open = true
	return true, l.UnlockMessage
}

// Open attempts to open. A locked lock must be satisfied first.
func (l *CodeLock) Open(p *Player, code string) (bool, string) {
	if l.open {
		return true, l.OpenMessage
	}
	if l.locked {
		if !l.satisfied(p, code) {
			return false, l.FailMessage
		}
		l.locked = false
	}
	l.open = true
	return true, l.OpenMessage
}

// satisfied checks a supplied code word against the configured code or
// required item name; with no code supplied, possession of the required
// item satisfies the attempt.
func (l *CodeLock) satisfied(p *Player, code string) bool {
	if code != "" {
		if l.Code != "" && strings.EqualFold(code, l.Code) {
			return true
		}
		return l.RequiredItem != "" && strings.EqualFold(code, l.RequiredItem) && p != nil && p.Carries(l.RequiredItem)
	}
	if l.RequiredItem != "" && p != nil && p.Carries(l.RequiredItem) {
		return true
	}
	// Neither code nor required item configured: the lock is a formality.
	return l.Code == "" && l.RequiredItem == ""
}

func (l *CodeLock) IsOpen() bool   { return l.open }
func (l *CodeLock) IsLocked() bool { return l.locked }

func (l *CodeLock) CodeGated() bool { return l.Code != "" }

func (l *CodeLock) Reset() {
	l.locked = l.initLocked
	l.open = l.initOpen
}
