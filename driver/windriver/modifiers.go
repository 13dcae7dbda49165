package windriver

// Modifiers is the modifier snapshot used to probe the OS composition
// call. Not the normalized bitset: caps lock matters for composition but
// is not part of the normalized set.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModCapsLock

	// bound for enumerating every combination; keep last
	modifiersEnd
)

func (m Modifiers) Has(v Modifiers) bool {
	return m&v > 0
}

// ActiveModifiers samples a raw per-virtual-key state array. Shift,
// control and alt test the down bit of the generic and left/right
// variants; caps lock tests the toggle bit (toggle state, not down/up).
func ActiveModifiers(keyState *[256]byte) Modifiers {
	down := func(vk int) bool {
		return keyState[vk]&kstateDownBit != 0
	}

	m := Modifiers(0)
	if down(_VK_SHIFT) || down(_VK_LSHIFT) || down(_VK_RSHIFT) {
		m |= ModShift
	}
	if down(_VK_CONTROL) || down(_VK_LCONTROL) || down(_VK_RCONTROL) {
		m |= ModControl
	}
	if down(_VK_MENU) || down(_VK_LMENU) || down(_VK_RMENU) {
		m |= ModAlt
	}
	if keyState[_VK_CAPITAL]&kstateToggleBit != 0 {
		m |= ModCapsLock
	}
	return m
}

// ApplyTo fabricates the raw state for this modifier combination: only
// the generic key is marked down for each set bit, and the generic plus
// left/right variants are cleared for each absent bit. Used to probe the
// composition call without interference from real keyboard state.
func (m Modifiers) ApplyTo(keyState *[256]byte) {
	if m.Has(ModShift) {
		keyState[_VK_SHIFT] |= kstateDownBit
	} else {
		keyState[_VK_SHIFT] &^= kstateDownBit
		keyState[_VK_LSHIFT] &^= kstateDownBit
		keyState[_VK_RSHIFT] &^= kstateDownBit
	}
	if m.Has(ModControl) {
		keyState[_VK_CONTROL] |= kstateDownBit
	} else {
		keyState[_VK_CONTROL] &^= kstateDownBit
		keyState[_VK_LCONTROL] &^= kstateDownBit
		keyState[_VK_RCONTROL] &^= kstateDownBit
	}
	if m.Has(ModAlt) {
		keyState[_VK_MENU] |= kstateDownBit
	} else {
		keyState[_VK_MENU] &^= kstateDownBit
		keyState[_VK_LMENU] &^= kstateDownBit
		keyState[_VK_RMENU] &^= kstateDownBit
	}
	if m.Has(ModCapsLock) {
		keyState[_VK_CAPITAL] |= kstateDownBit
	} else {
		keyState[_VK_CAPITAL] &^= kstateDownBit
	}
}

// RemoveOnlyCtrl clears the control modifier unless alt is also present.
// The OS reports control+alt together for the AltGr key; consumers must
// not see a spurious control unless alt is genuinely held too.
func (m Modifiers) RemoveOnlyCtrl() Modifiers {
	if !m.Has(ModAlt) {
		m &^= ModControl
	}
	return m
}
