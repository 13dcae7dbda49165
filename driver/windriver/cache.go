package windriver

import (
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"keynorm/event"
)

// LayoutCache memoizes layouts per locale id. Entries are never evicted.
// The lock is held across the cache lookup and, on a miss, the entire
// layout construction pass, so the first lookup for an unseen locale is
// the expensive path.
type LayoutCache struct {
	mu      sync.Mutex
	api     NativeAPI
	layouts map[uint64]*Layout // locale id -> layout
	strings map[string]string  // append-only interning pool
}

func NewLayoutCache(api NativeAPI) *LayoutCache {
	return &LayoutCache{
		api:     api,
		layouts: map[uint64]*Layout{},
		strings: map[string]string{},
	}
}

// GetCurrentLayout queries the active locale id and returns its layout,
// building and inserting it first if it isn't known yet.
func (c *LayoutCache) GetCurrentLayout() (uint64, *Layout) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCurrentLayout()
}

func (c *LayoutCache) getCurrentLayout() (uint64, *Layout) {
	localeID := c.api.ActiveLocale()
	if l, ok := c.layouts[localeID]; ok {
		return localeID, l
	}
	l := c.prepareLayout(localeID)
	c.layouts[localeID] = l
	return localeID, l
}

// GetAgnosticMods derives the normalized modifier bitset from live key
// state. When the active layout has an altgr level and the right alt key
// is down, control and alt are suppressed: the hardware is reporting the
// altgr chord, not a genuine ctrl/alt combination.
func (c *LayoutCache) GetAgnosticMods() event.KeyModifiers {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, layout := c.getCurrentLayout()
	filterOutAltGr := layout.HasAltGraph && c.api.KeyPressed(_VK_RMENU)

	mods := event.ModNone
	mods = mods.With(event.ModShift, c.api.KeyPressed(_VK_SHIFT))
	mods = mods.With(event.ModCtrl, c.api.KeyPressed(_VK_CONTROL) && !filterOutAltGr)
	mods = mods.With(event.ModAlt, c.api.KeyPressed(_VK_MENU) && !filterOutAltGr)
	mods = mods.With(event.ModSuper, c.api.KeyPressed(_VK_LWIN) || c.api.KeyPressed(_VK_RWIN))
	return mods
}

// internString returns the pool's canonical copy of s, inserting it
// first if needed. Pool entries are never removed, so returned strings
// stay valid for the cache's entire lifetime.
func (c *LayoutCache) internString(s string) string {
	if s2, ok := c.strings[s]; ok {
		return s2
	}
	c.strings[s] = s
	return s
}

//----------

func (c *LayoutCache) prepareLayout(localeID uint64) *Layout {
	layout := &Layout{Keys: map[Modifiers]map[event.KeyCode]event.Key{}}

	// all zeros simulates a state with no modifier active
	keyState := [256]byte{}

	// Iterate every modifier combination in ascending numeric order: the
	// empty combination must be processed before control+alt because the
	// altgr detection below compares against the empty table. Do not
	// reorder or parallelize.
	for modState := Modifiers(0); modState < modifiersEnd; modState++ {
		keysForMod := make(map[event.KeyCode]event.Key, 256)
		modState.ApplyTo(&keyState)

		// virtual key values are in the domain [0,255]; the key state
		// array is indexed by virtual key value
		for vk := uint32(0); vk < 256; vk++ {
			scancode := c.api.MapVirtualKey(vk, localeID)
			if scancode == 0 {
				continue // key does not exist under this locale
			}
			keyCode := scancodeToKeyCode(uint16(scancode))

			// non-printable keys never need character composition and
			// take priority
			if ks := vkeyToNonPrintable(vk); ks != event.KSymNone {
				keysForMod[keyCode] = event.Named(ks)
				continue
			}

			var key event.Key
			switch res := c.toUnicodeString(&keyState, vk, scancode, localeID); res.kind {
			case toUnicodeStr:
				key = event.Character(c.internString(res.str))
			case toUnicodeDead:
				key = event.Dead{Combining: res.dead}
			default:
				// the composition call is known not to report the numpad
				// divide key on some implementations
				if !modState.Has(ModAlt) && !modState.Has(ModControl) &&
					keyCode == event.KCNumpadDivide {
					key = event.Character("/")
				} else {
					key = event.Unidentified{Scancode: uint16(scancode)}
				}
			}

			// A key that produces a different character under ctrl+alt
			// than under no modifiers means the layout has an altgr
			// level. The empty combination was processed first, so its
			// table is already available.
			if !layout.HasAltGraph && modState == ModControl|ModAlt {
				simpleKeys := layout.Keys[0]
				if noAltGr, ok := simpleKeys[keyCode].(event.Character); ok {
					if ch, ok := key.(event.Character); ok {
						layout.HasAltGraph = ch != noAltGr
					}
				}
			}

			keysForMod[keyCode] = key
		}
		layout.Keys[modState] = keysForMod
	}

	// second pass: the right alt slot becomes the altgraph marker under
	// every combination, superseding whatever the first pass inferred
	if layout.HasAltGraph {
		for modState := Modifiers(0); modState < modifiersEnd; modState++ {
			keys := layout.Keys[modState]
			if _, ok := keys[event.KCAltR]; ok {
				keys[event.KCAltR] = event.AltGraph{}
			}
		}
	}

	return layout
}

//----------

const (
	toUnicodeNone = iota
	toUnicodeStr
	toUnicodeDead
)

type toUnicodeResult struct {
	kind int
	str  string
	dead rune // 0 when the dead key has no combining character
}

// toUnicodeString runs the composition call. A dead-key signal is
// followed by a second call with identical inputs, specifically to
// consume the dead-key state the first call left behind in the OS; any
// character it yields is the combining character.
func (c *LayoutCache) toUnicodeString(keyState *[256]byte, vkey, scancode uint32, localeID uint64) toUnicodeResult {
	buf := make([]uint16, 8)
	n := c.api.ToUnicode(vkey, scancode, keyState, buf, localeID)
	if n < 0 {
		n = c.api.ToUnicode(vkey, scancode, keyState, buf, localeID)
		if n > 0 {
			if s, ok := decodeUTF16(buf[:n]); ok {
				for _, ru := range s {
					return toUnicodeResult{kind: toUnicodeDead, dead: ru}
				}
			}
		}
		return toUnicodeResult{kind: toUnicodeDead}
	}
	if n > 0 {
		if s, ok := decodeUTF16(buf[:n]); ok {
			return toUnicodeResult{kind: toUnicodeStr, str: s}
		}
	}
	return toUnicodeResult{kind: toUnicodeNone}
}

// decodeUTF16 rejects malformed input instead of inserting replacement
// runes; a malformed composition result is "no information".
func decodeUTF16(units []uint16) (string, bool) {
	rus := utf16.Decode(units)
	for _, ru := range rus {
		if ru == utf8.RuneError {
			return "", false
		}
	}
	return string(rus), true
}
