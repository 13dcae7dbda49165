package xinput

import (
	"fmt"
	"unicode"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"keynorm/event"
)

// $ man keymaps
// https://tronche.com/gui/x/xlib/input/XGetKeyboardMapping.html
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html

// xproto.Keycode is a physical key.
// xproto.Keysym is the encoding of a symbol on the cap of a key.
// A list of keysyms is associated with each keycode.

//----------

// KMap resolves (keycode, raw state mask) pairs to locale-independent
// key identities using the server keyboard mapping.
type KMap struct {
	si    *xproto.SetupInfo
	reply *xproto.GetKeyboardMappingReply
	conn  *xgb.Conn

	modGroups struct {
		numLock int8
		alt     int8
		altGr   int8
		super   int8
	}
}

func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	if err := km.ReadMapping(); err != nil {
		return nil, err
	}
	return km, nil
}

//----------

// ReadMapping rebuilds the keysym table and the modifier group
// assignments. Called at startup and on mapping-notify.
func (km *KMap) ReadMapping() error {
	if err := km.readKeyboardMapping(); err != nil {
		return err
	}
	if err := km.readModGroups(); err != nil {
		return err
	}
	return nil
}

func (km *KMap) readKeyboardMapping() error {
	si := xproto.Setup(km.conn)
	count := byte(si.MaxKeycode - si.MinKeycode + 1)
	if count <= 0 {
		return fmt.Errorf("bad keycode count: %v", count)
	}
	reply, err := xproto.GetKeyboardMapping(km.conn, si.MinKeycode, count).Reply()
	if err != nil {
		return err
	}
	if reply.KeysymsPerKeycode < 2 {
		return fmt.Errorf("keysyms per keycode < 2")
	}
	km.reply = reply
	km.si = si
	return nil
}

// readModGroups detects which of the Mod1..Mod5 slots carry alt, altgr,
// super and num lock, by checking the keysyms of the keycodes in each
// slot.
func (km *KMap) readModGroups() error {
	modMap, err := xproto.GetModifierMapping(km.conn).Reply()
	if err != nil {
		return err
	}

	// 8 modifier groups, each with n keycodes
	//0	Shift
	//1	Lock (Caps Lock)
	//2	Control
	//--- detect
	//3	Mod1 (Usually Alt)
	//4	Mod2 (Often Num Lock)
	//5	Mod3 (Rarely used)
	//6	Mod4 (Often Super/Meta)
	//7	Mod5 (Often AltGr)

	type KS = xproto.Keysym
	numLocks := []KS{
		0xff7f, // XK_Num_Lock
	}
	alts := []KS{
		0xffe9, // XK_Alt_L
		0xffea, // XK_Alt_R
	}
	altGrs := []KS{
		0xfe03, // XK_ISO_Level3_Shift
		0xfe11, // XK_ISO_Level5_Shift
		0xff7e, // XK_ISO_Group_Shift
	}
	supers := []KS{
		0xffeb, // XK_Super_L
		0xffec, // XK_Super_R
	}

	// defaults
	km.modGroups.numLock = 4
	km.modGroups.alt = 3
	km.modGroups.altGr = 7
	km.modGroups.super = 6

	type pair struct {
		group *int8
		kss   []KS
	}
	pairs := []pair{
		{&km.modGroups.numLock, numLocks},
		{&km.modGroups.alt, alts},
		{&km.modGroups.altGr, altGrs},
		{&km.modGroups.super, supers},
	}

	stride := int(modMap.KeycodesPerModifier)
	if len(modMap.Keycodes) < stride*numModSlots {
		return fmt.Errorf("bad modifier keymap length: %v", len(modMap.Keycodes))
	}
	for g := 3; g < numModSlots; g++ {
		kcs := modMap.Keycodes[g*stride : (g+1)*stride]
	kcLoop: // iterate keycodes/keysyms, keep first found group
		for _, kc := range kcs {
			kss := km.keycodeToKeysyms(kc)
			for _, ks := range kss {
				for _, p := range pairs {
					for _, ks2 := range p.kss {
						if ks == ks2 {
							*p.group = int8(g)
							break kcLoop
						}
					}
				}
			}
		}
	}

	return nil
}

//----------

// Lookup resolves a physical keycode under a raw state mask.
func (km *KMap) Lookup(keycode xproto.Keycode, kmods uint16) (event.KeySym, rune) {
	kss := km.keycodeToKeysyms(keycode)
	ks := km.keysymsToKeysym(kss, kmods)
	eks := keysymToKeySym(ks)
	ru := keysymRune(ks, eks)
	return eks, ru
}

// ResolveKey wraps Lookup into the resolved-key sum type. Dead-key
// keysyms (combining accents) resolve to Dead with their combining rune.
func (km *KMap) ResolveKey(keycode xproto.Keycode, kmods uint16) event.Key {
	kss := km.keycodeToKeysyms(keycode)
	ks := km.keysymsToKeysym(kss, kmods)
	eks := keysymToKeySym(ks)
	ru := keysymRune(ks, eks)
	switch {
	case isDeadKeySym(eks):
		return event.Dead{Combining: event.KeySymRune(eks)}
	case isNamedKeySym(eks):
		return event.Named(eks)
	case ru != 0 && unicode.IsGraphic(ru) &&
		(event.KeySymRune(eks) != 0 || !isFunctionKeysym(ks)):
		return event.Character(string(ru))
	case eks != event.KSymNone:
		return event.Named(eks)
	}
	return event.Unidentified{Scancode: uint16(keycode)}
}

func isDeadKeySym(ks event.KeySym) bool {
	return ks >= event.KSymGrave && ks <= event.KSymMacron
}

// named non-printables: everything past the character block with no
// printable rune of its own
func isNamedKeySym(ks event.KeySym) bool {
	return ks >= event.KSymBackspace && event.KeySymRune(ks) == 0
}

// the function keysym range (0xfd00-0xffff) overlaps printable unicode
// codepoints when interpreted as a rune directly
func isFunctionKeysym(ks xproto.Keysym) bool {
	return ks >= 0xfd00 && ks <= 0xffff
}

// Modifiers translates a raw state mask into the normalized bitset using
// the detected modifier groups.
func (km *KMap) Modifiers(kmods uint16) event.KeyModifiers {
	em := event.ModNone
	if kmods&xproto.KeyButMaskShift > 0 {
		em |= event.ModShift
	}
	if kmods&xproto.KeyButMaskControl > 0 {
		em |= event.ModCtrl
	}
	if km.groupActive(kmods, km.modGroups.alt) {
		em |= event.ModAlt
	}
	if km.groupActive(kmods, km.modGroups.super) {
		em |= event.ModSuper
	}
	return em
}

func (km *KMap) groupActive(kmods uint16, g int8) bool {
	if g < 0 {
		return false
	}
	return kmods&(1<<uint(g)) > 0
}

//----------

func (km *KMap) keycodeToKeysyms(keycode xproto.Keycode) []xproto.Keysym {
	y := int(keycode - km.si.MinKeycode)
	n := km.si.MaxKeycode - km.si.MinKeycode + 1
	if y < 0 || y >= int(n) {
		return nil
	}
	stride := int(km.reply.KeysymsPerKeycode) // usually ~7
	return km.reply.Keysyms[y*stride : (y+1)*stride]
}

func (km *KMap) keysymsToKeysym(kss []xproto.Keysym, m uint16) xproto.Keysym {
	hasShift := m&xproto.KeyButMaskShift > 0
	hasCapsLock := m&xproto.KeyButMaskLock > 0
	hasCtrl := m&xproto.KeyButMaskControl > 0
	hasAltGr := km.groupActive(m, km.modGroups.altGr)
	hasNumLock := km.groupActive(m, km.modGroups.numLock)

	// keysym group
	group := 0
	if hasCtrl {
		group = 1
	} else if hasAltGr {
		group = 2
	}

	// each group has two symbols
	i1 := group * 2
	i2 := i1 + 1
	if i1 >= len(kss) {
		return 0
	}
	if i2 >= len(kss) {
		i2 = i1
	}
	ks1, ks2 := kss[i1], kss[i2]
	if ks2 == 0 {
		ks2 = ks1
	}

	// keypad
	if hasNumLock && isKeypad(ks2) {
		if hasShift {
			return ks1
		}
		return ks2
	}

	r1 := rune(ks1)
	hasLower := unicode.IsLower(unicode.ToLower(r1))

	if hasLower {
		shifted := (hasShift && !hasCapsLock) || (!hasShift && hasCapsLock)
		if shifted {
			return ks2
		}
		return ks1
	}

	if hasShift {
		return ks2
	}
	return ks1
}

//----------

func isKeypad(ks xproto.Keysym) bool {
	return (0xFF80 <= ks && ks <= 0xFFBD) ||
		(0x11000000 <= ks && ks <= 0x1100FFFF)
}
