package xinput

import (
	"testing"

	"github.com/jezek/xgb/xproto"

	"keynorm/event"
)

// fake mapping, independent of any live server: 6 keysyms per keycode,
// groups of two ([plain, shifted][ctrl][altgr])
func testKMap() *KMap {
	stride := 6
	row := func(kss ...xproto.Keysym) []xproto.Keysym {
		w := make([]xproto.Keysym, stride)
		copy(w, kss)
		return w
	}
	keysyms := []xproto.Keysym{}
	keysyms = append(keysyms, row(0x61, 0x41, 0x61, 0x41, 0xe6, 0xc6)...) // kc8: a/A, altgr æ/Æ
	keysyms = append(keysyms, row(0x32, 0x40, 0x32, 0x40, 0x32, 0x40)...) // kc9: 2/@
	keysyms = append(keysyms, row(0xff9f, 0xffae)...)                     // kc10: keypad delete/decimal
	keysyms = append(keysyms, row(0xfe50, 0xfe50)...)                     // kc11: dead grave
	keysyms = append(keysyms, row(0xffe1, 0xffe1)...)                     // kc12: shift left

	km := &KMap{
		si: &xproto.SetupInfo{MinKeycode: 8, MaxKeycode: 12},
		reply: &xproto.GetKeyboardMappingReply{
			KeysymsPerKeycode: byte(stride),
			Keysyms:           keysyms,
		},
	}
	km.modGroups.numLock = 4
	km.modGroups.alt = 3
	km.modGroups.altGr = 7
	km.modGroups.super = 6
	return km
}

func TestKMapLookup(t *testing.T) {
	km := testKMap()

	type pair struct {
		kc    xproto.Keycode
		kmods uint16

		eks event.KeySym
		ru  rune
	}
	pairs := []pair{
		{8, 0, event.KSymA, 'a'},
		{8, xproto.KeyButMaskShift, event.KSymA, 'A'},
		{8, xproto.KeyButMaskLock, event.KSymA, 'A'},
		{8, xproto.KeyButMaskShift | xproto.KeyButMaskLock, event.KSymA, 'a'},
		{9, 0, event.KSym2, '2'},
		{9, xproto.KeyButMaskShift, event.KSymAt, '@'},
		{10, 0, event.KSymKeypadDelete, 0xff9f},
		{10, xproto.KeyButMaskMod2, event.KSymKeypadDecimal, '.'},
		{11, 0, event.KSymGrave, '`'},
		{12, 0, event.KSymShiftL, 0xffe1},
	}
	for i, p := range pairs {
		eks, ru := km.Lookup(p.kc, p.kmods)
		if eks != p.eks || ru != p.ru {
			t.Fatalf("entry %v:\n(0x%x,%v)->(%v,%q)\nexpected (%v,%q)\n",
				i, p.kc, p.kmods, eks, ru, p.eks, p.ru)
		}
	}
}

func TestKMapResolveKey(t *testing.T) {
	km := testKMap()

	type pair struct {
		kc    xproto.Keycode
		kmods uint16
		key   event.Key
	}
	pairs := []pair{
		{8, 0, event.Character("a")},
		{8, xproto.KeyButMaskShift, event.Character("A")},
		{8, xproto.KeyButMaskMod5, event.Character("æ")},
		{11, 0, event.Dead{Combining: '`'}},
		{12, 0, event.Named(event.KSymShiftL)},
	}
	for i, p := range pairs {
		k := km.ResolveKey(p.kc, p.kmods)
		if k != p.key {
			t.Fatalf("entry %v: got %#v, expected %#v", i, k, p.key)
		}
	}
}

func TestKMapModifiers(t *testing.T) {
	km := testKMap()

	type pair struct {
		kmods uint16
		em    event.KeyModifiers
	}
	pairs := []pair{
		{0, event.ModNone},
		{xproto.KeyButMaskShift, event.ModShift},
		{xproto.KeyButMaskControl, event.ModCtrl},
		{xproto.KeyButMaskMod1, event.ModAlt},
		{xproto.KeyButMaskMod4, event.ModSuper},
		{xproto.KeyButMaskLock, event.ModNone}, // caps lock is not part of the normalized set
		{xproto.KeyButMaskShift | xproto.KeyButMaskMod1, event.ModShift | event.ModAlt},
	}
	for i, p := range pairs {
		em := km.Modifiers(p.kmods)
		if em != p.em {
			t.Fatalf("entry %v: mask %b: got %b, expected %b", i, p.kmods, em, p.em)
		}
	}
}
