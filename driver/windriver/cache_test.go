package windriver

import (
	"reflect"
	"testing"
	"unicode/utf16"
	"unsafe"

	"keynorm/event"
)

//----------

type fakeKey struct {
	vk   uint32
	mods Modifiers
}

// fakeAPI scripts the OS keyboard interface: a vk->scancode table, a
// composition table keyed by (vk, sampled modifiers), and a dead-key
// table honoring the two-call protocol.
type fakeAPI struct {
	locale    uint64
	scancodes map[uint32]uint32
	chars     map[fakeKey]string
	dead      map[fakeKey]rune // 0 = dead with no combining char
	pressed   map[int32]bool

	deadPending bool
}

func (f *fakeAPI) ActiveLocale() uint64 {
	return f.locale
}

func (f *fakeAPI) MapVirtualKey(vk uint32, locale uint64) uint32 {
	return f.scancodes[vk]
}

func (f *fakeAPI) ToUnicode(vk, scancode uint32, keyState *[256]byte, buf []uint16, locale uint64) int {
	k := fakeKey{vk, ActiveModifiers(keyState) &^ ModCapsLock}
	if ru, ok := f.dead[k]; ok {
		if !f.deadPending {
			// first call: signal and leave dead-key state behind
			f.deadPending = true
			return -1
		}
		f.deadPending = false
		if ru == 0 {
			return 0
		}
		return copy(buf, utf16.Encode([]rune{ru}))
	}
	if s, ok := f.chars[k]; ok {
		return copy(buf, utf16.Encode([]rune(s)))
	}
	return 0
}

func (f *fakeAPI) KeyPressed(vk int32) bool {
	return f.pressed[vk]
}

//----------

// a minimal layout: "a" key, shift level, a dead key, numpad divide,
// left arrow, right alt
func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		locale: 0x409,
		scancodes: map[uint32]uint32{
			0x41:       0x1e,   // A
			0xde:       0x28,   // quote key
			_VK_DIVIDE: 0xe035, // numpad divide
			_VK_LEFT:   0xe04b,
			_VK_RMENU:  0xe038,
		},
		chars: map[fakeKey]string{
			{0x41, 0}:        "a",
			{0x41, ModShift}: "A",
		},
		dead:    map[fakeKey]rune{},
		pressed: map[int32]bool{},
	}
}

// same layout with an altgr level on the "a" key
func newFakeAltGrAPI() *fakeAPI {
	f := newFakeAPI()
	f.chars[fakeKey{0x41, ModControl | ModAlt}] = "á"
	return f
}

//----------

func TestPrepareLayoutBasic(t *testing.T) {
	c := NewLayoutCache(newFakeAPI())
	localeID, l := c.GetCurrentLayout()
	if localeID != 0x409 {
		t.Fatalf("locale: got 0x%x", localeID)
	}
	if l.HasAltGraph {
		t.Fatalf("unexpected altgr level")
	}

	type pair struct {
		mods Modifiers
		kc   event.KeyCode
		key  event.Key
	}
	pairs := []pair{
		{0, event.KCKeyA, event.Character("a")},
		{ModShift, event.KCKeyA, event.Character("A")},
		{ModCapsLock, event.KCKeyA, event.Character("a")}, // fake ignores caps
		{0, event.KCLeft, event.Named(event.KSymLeft)},
		{ModShift, event.KCLeft, event.Named(event.KSymLeft)},
		{0, event.KCAltR, event.Named(event.KSymAltR)},
		{ModControl, event.KCKeyA, event.Unidentified{Scancode: 0x1e}},
	}
	for i, p := range pairs {
		key := l.GetKey(p.mods, 0, p.kc)
		if key != p.key {
			t.Fatalf("entry %v: got %#v, expected %#v", i, key, p.key)
		}
	}

	// unknown entries degrade to unidentified with the native scancode
	if key := l.GetKey(0, 0x77, event.KCKeyZ); key != (event.Unidentified{Scancode: 0x77}) {
		t.Fatalf("got %#v, expected unidentified fallback", key)
	}
}

func TestNumpadDivideWorkaround(t *testing.T) {
	c := NewLayoutCache(newFakeAPI())
	_, l := c.GetCurrentLayout()

	// unreported by the composition call: force-assigned "/" while alt
	// and ctrl are absent
	if key := l.Keys[0][event.KCNumpadDivide]; key != event.Character("/") {
		t.Fatalf("got %#v, expected %q", key, "/")
	}
	if key := l.Keys[ModShift][event.KCNumpadDivide]; key != event.Character("/") {
		t.Fatalf("got %#v, expected %q", key, "/")
	}
	// with ctrl or alt active the fallback is the preliminary key
	if key := l.Keys[ModControl][event.KCNumpadDivide]; key != (event.Unidentified{Scancode: 0xe035}) {
		t.Fatalf("got %#v, expected unidentified", key)
	}
}

func TestDeadKeyProtocol(t *testing.T) {
	f := newFakeAPI()
	f.dead[fakeKey{0xde, 0}] = '´'
	f.dead[fakeKey{0xde, ModShift}] = 0 // dead with nothing
	c := NewLayoutCache(f)
	_, l := c.GetCurrentLayout()

	if key := l.Keys[0][event.KCQuote]; key != (event.Dead{Combining: '´'}) {
		t.Fatalf("got %#v, expected dead ´", key)
	}
	if key := l.Keys[ModShift][event.KCQuote]; key != (event.Dead{}) {
		t.Fatalf("got %#v, expected dead with no combining char", key)
	}
}

func TestAltGrDetection(t *testing.T) {
	c := NewLayoutCache(newFakeAltGrAPI())
	_, l := c.GetCurrentLayout()

	if !l.HasAltGraph {
		t.Fatalf("altgr level not detected")
	}
	if key := l.Keys[ModControl|ModAlt][event.KCKeyA]; key != event.Character("á") {
		t.Fatalf("got %#v, expected %q", key, "á")
	}
	// second pass: the right alt slot is the altgraph marker under
	// every combination
	for m := Modifiers(0); m < modifiersEnd; m++ {
		if key := l.Keys[m][event.KCAltR]; key != (event.AltGraph{}) {
			t.Fatalf("mods %b: got %#v, expected altgraph marker", m, key)
		}
	}
}

func TestPrepareLayoutDeterministic(t *testing.T) {
	c1 := NewLayoutCache(newFakeAltGrAPI())
	c2 := NewLayoutCache(newFakeAltGrAPI())
	_, l1 := c1.GetCurrentLayout()
	_, l2 := c2.GetCurrentLayout()
	if !reflect.DeepEqual(l1, l2) {
		t.Fatalf("identical OS answers produced different layouts")
	}
}

func TestLayoutCacheMemoizes(t *testing.T) {
	f := newFakeAPI()
	c := NewLayoutCache(f)
	_, l1 := c.GetCurrentLayout()
	_, l2 := c.GetCurrentLayout()
	if l1 != l2 {
		t.Fatalf("second lookup rebuilt the layout")
	}

	// a locale switch is a new cache entry, not a mutation
	f.locale = 0x40c
	_, l3 := c.GetCurrentLayout()
	if l3 == l1 {
		t.Fatalf("locale switch returned the old layout")
	}
	f.locale = 0x409
	if _, l4 := c.GetCurrentLayout(); l4 != l1 {
		t.Fatalf("original locale lost its entry")
	}
}

func TestStringInterning(t *testing.T) {
	// the same text composed under different combinations and locales
	// shares one underlying string
	f := newFakeAPI()
	f.chars[fakeKey{0x41, ModControl | ModAlt}] = "a" // same as unmodified: no altgr
	c := NewLayoutCache(f)
	_, l := c.GetCurrentLayout()

	f.locale = 0x40c
	_, l2 := c.GetCurrentLayout()

	k1 := l.Keys[0][event.KCKeyA].(event.Character)
	k2 := l.Keys[ModControl|ModAlt][event.KCKeyA].(event.Character)
	k3 := l2.Keys[0][event.KCKeyA].(event.Character)
	p1 := unsafe.StringData(string(k1))
	if p2 := unsafe.StringData(string(k2)); p2 != p1 {
		t.Fatalf("same text across combinations not interned")
	}
	if p3 := unsafe.StringData(string(k3)); p3 != p1 {
		t.Fatalf("same text across locales not interned")
	}
}

func TestGetAgnosticMods(t *testing.T) {
	// altgr chord: right alt down makes the OS report ctrl+alt; both
	// are suppressed on layouts with an altgr level
	f := newFakeAltGrAPI()
	f.pressed[_VK_RMENU] = true
	f.pressed[_VK_CONTROL] = true
	f.pressed[_VK_MENU] = true
	f.pressed[_VK_SHIFT] = true
	c := NewLayoutCache(f)
	if mods := c.GetAgnosticMods(); !mods.Is(event.ModShift) {
		t.Fatalf("got %b, expected shift only", mods)
	}

	// without an altgr level the same key state reports ctrl+alt
	f2 := newFakeAPI()
	f2.pressed[_VK_RMENU] = true
	f2.pressed[_VK_CONTROL] = true
	f2.pressed[_VK_MENU] = true
	c2 := NewLayoutCache(f2)
	if mods := c2.GetAgnosticMods(); !mods.Is(event.ModCtrl | event.ModAlt) {
		t.Fatalf("got %b, expected ctrl+alt", mods)
	}

	// windows key
	f3 := newFakeAPI()
	f3.pressed[_VK_LWIN] = true
	c3 := NewLayoutCache(f3)
	if mods := c3.GetAgnosticMods(); !mods.Is(event.ModSuper) {
		t.Fatalf("got %b, expected super", mods)
	}
}
