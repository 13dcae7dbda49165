package xinput

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"keynorm/event"
)

// Offsets of the modifier slots in the X modifier keymap. There are 8
// slots total, in the order: Shift, Lock, Control, Mod1 (Alt), Mod2,
// Mod3, Mod4 (Logo), Mod5. Only 4 are of interest here.
// https://tronche.com/gui/x/xlib/input/XSetModifierMapping.html
const (
	shiftOffset   = 0
	controlOffset = 2
	altOffset     = 3
	logoOffset    = 6
	numModSlots   = 8
)

//----------

// Modifier is one modifier category tracked by the keymap and the state
// tracker.
type Modifier int

const (
	ModifierAlt Modifier = iota
	ModifierCtrl
	ModifierShift
	ModifierLogo
)

// ModifierNone is the "no exception" value for ModifierKeyState.Reconcile.
const ModifierNone Modifier = -1

func (m Modifier) String() string {
	switch m {
	case ModifierAlt:
		return "alt"
	case ModifierCtrl:
		return "ctrl"
	case ModifierShift:
		return "shift"
	case ModifierLogo:
		return "logo"
	}
	return "none"
}

func (m Modifier) keyModifiers() event.KeyModifiers {
	switch m {
	case ModifierAlt:
		return event.ModAlt
	case ModifierCtrl:
		return event.ModCtrl
	case ModifierShift:
		return event.ModShift
	case ModifierLogo:
		return event.ModSuper
	}
	return event.ModNone
}

//----------

// ModifierKeymap maps physical keycodes to modifiers, rebuilt wholesale
// from the X modifier mapping. At most one modifier per keycode.
type ModifierKeymap struct {
	keys map[xproto.Keycode]Modifier
}

func NewModifierKeymap() *ModifierKeymap {
	return &ModifierKeymap{keys: map[xproto.Keycode]Modifier{}}
}

// Get returns the modifier associated with a physical keycode.
func (mk *ModifierKeymap) Get(keycode xproto.Keycode) (Modifier, bool) {
	m, ok := mk.keys[keycode]
	return m, ok
}

// Reset fetches the modifier mapping from the server and rebuilds the
// map. A failed fetch is returned as an error; no input decoding is
// possible without the table, so callers are expected to abort on it.
func (mk *ModifierKeymap) Reset(conn *xgb.Conn) error {
	reply, err := xproto.GetModifierMapping(conn).Reply()
	if err != nil {
		return fmt.Errorf("get modifier mapping: %w", err)
	}
	return mk.resetFromReply(reply)
}

// resetFromReply is the only place the raw fixed-width table is sliced;
// lengths are validated here, everything above operates on the map.
func (mk *ModifierKeymap) resetFromReply(reply *xproto.GetModifierMappingReply) error {
	keysPerMod := int(reply.KeycodesPerModifier)
	if len(reply.Keycodes) < keysPerMod*numModSlots {
		return fmt.Errorf("bad modifier keymap length: %v (keycodes per modifier: %v)",
			len(reply.Keycodes), keysPerMod)
	}

	for k := range mk.keys {
		delete(mk.keys, k)
	}

	// fixed order: a keycode appearing in more than one slot keeps the
	// later-processed modifier
	mk.readSlot(reply.Keycodes, shiftOffset, keysPerMod, ModifierShift)
	mk.readSlot(reply.Keycodes, controlOffset, keysPerMod, ModifierCtrl)
	mk.readSlot(reply.Keycodes, altOffset, keysPerMod, ModifierAlt)
	mk.readSlot(reply.Keycodes, logoOffset, keysPerMod, ModifierLogo)
	return nil
}

func (mk *ModifierKeymap) readSlot(keycodes []xproto.Keycode, offset, keysPerMod int, m Modifier) {
	start := offset * keysPerMod
	for _, kc := range keycodes[start : start+keysPerMod] {
		if kc != 0 { // zero entries are padding
			mk.keys[kc] = m
		}
	}
}

//----------

// ModifierKeyState tracks the currently pressed modifiers for one input
// context and reconciles them against externally reported state.
type ModifierKeyState struct {
	state event.KeyModifiers
}

func (ms *ModifierKeyState) Modifiers() event.KeyModifiers {
	return ms.state
}

// Press sets the modifier bit and reports whether the state changed.
func (ms *ModifierKeyState) Press(m Modifier) bool {
	return ms.set(m, true)
}

// Release clears the modifier bit and reports whether the state changed.
// There is no reference counting: if two physical keys map to the same
// modifier, releasing either clears the bit even while the other is
// still held. Known limitation, kept as documented behavior.
func (ms *ModifierKeyState) Release(m Modifier) bool {
	return ms.set(m, false)
}

func (ms *ModifierKeyState) set(m Modifier, on bool) bool {
	s := ms.state.With(m.keyModifiers(), on)
	if s == ms.state {
		return false
	}
	ms.state = s
	return true
}

// Reconcile adopts the externally reported state wholesale, except for
// one modifier category that keeps the locally tracked bit (event flags
// may not have caught up with the key currently transitioning). Returns
// the new state and whether it differs from the previously tracked one.
func (ms *ModifierKeyState) Reconcile(external event.KeyModifiers, except Modifier) (event.KeyModifiers, bool) {
	s := external
	if except != ModifierNone {
		em := except.keyModifiers()
		s = s.With(em, ms.state.HasAny(em))
	}
	if s == ms.state {
		return ms.state, false
	}
	ms.state = s
	return s, true
}
