package windriver

import (
	"testing"
)

func TestModifiersRoundTrip(t *testing.T) {
	// ActiveModifiers(ApplyTo(m)) == m for every combination, except
	// caps lock: ApplyTo marks its down bit while sampling reads the
	// toggle bit, so it never round-trips
	for m := Modifiers(0); m < modifiersEnd; m++ {
		keyState := [256]byte{}
		m.ApplyTo(&keyState)
		got := ActiveModifiers(&keyState)
		if got != m&^ModCapsLock {
			t.Fatalf("mods %b: got %b, expected %b", m, got, m&^ModCapsLock)
		}
	}
}

func TestModifiersCapsLockToggleBit(t *testing.T) {
	keyState := [256]byte{}
	keyState[_VK_CAPITAL] = kstateToggleBit
	if got := ActiveModifiers(&keyState); got != ModCapsLock {
		t.Fatalf("got %b, expected caps lock only", got)
	}
	// the down bit alone does not count as toggled
	keyState[_VK_CAPITAL] = kstateDownBit
	if got := ActiveModifiers(&keyState); got != 0 {
		t.Fatalf("got %b, expected empty", got)
	}
}

func TestModifiersApplyToClearsVariants(t *testing.T) {
	keyState := [256]byte{}
	keyState[_VK_LSHIFT] = kstateDownBit
	keyState[_VK_RCONTROL] = kstateDownBit
	Modifiers(0).ApplyTo(&keyState)
	if got := ActiveModifiers(&keyState); got != 0 {
		t.Fatalf("got %b, expected variants cleared", got)
	}
}

func TestModifiersSamplesVariants(t *testing.T) {
	type pair struct {
		vk int
		m  Modifiers
	}
	pairs := []pair{
		{_VK_SHIFT, ModShift},
		{_VK_LSHIFT, ModShift},
		{_VK_RSHIFT, ModShift},
		{_VK_CONTROL, ModControl},
		{_VK_LCONTROL, ModControl},
		{_VK_RCONTROL, ModControl},
		{_VK_MENU, ModAlt},
		{_VK_LMENU, ModAlt},
		{_VK_RMENU, ModAlt},
	}
	for i, p := range pairs {
		keyState := [256]byte{}
		keyState[p.vk] = kstateDownBit
		if got := ActiveModifiers(&keyState); got != p.m {
			t.Fatalf("entry %v: vk 0x%x: got %b, expected %b", i, p.vk, got, p.m)
		}
	}
}

func TestRemoveOnlyCtrl(t *testing.T) {
	for m := Modifiers(0); m < modifiersEnd; m++ {
		got := m.RemoveOnlyCtrl()
		if m.Has(ModAlt) {
			if got != m {
				t.Fatalf("mods %b: got %b, expected unchanged with alt set", m, got)
			}
		} else {
			if got != m&^ModControl {
				t.Fatalf("mods %b: got %b, expected control cleared", m, got)
			}
		}
	}
}
