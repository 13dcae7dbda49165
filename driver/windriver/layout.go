package windriver

import (
	"keynorm/event"
)

// Layout is the complete key table for one locale: modifier combination
// -> physical key code -> resolved key. Built once per locale on first
// use and treated as immutable after insertion into the cache; a locale
// change produces a new cache entry, never a mutation of an existing one.
//
// A full table is needed because the composition call is stateful (it
// clears pending dead keys), so it cannot be invoked casually at
// press/release time. There is a flag to prevent changing the state but
// it requires windows 10, version 1607 or newer.
type Layout struct {
	Keys        map[Modifiers]map[event.KeyCode]event.Key
	HasAltGraph bool
}

// GetKey resolves a key press under the given modifier combination.
// Unknown entries degrade to Unidentified with the native scancode.
func (l *Layout) GetKey(mods Modifiers, scancode uint16, keycode event.KeyCode) event.Key {
	if keys, ok := l.Keys[mods]; ok {
		if key, ok := keys[keycode]; ok {
			return key
		}
	}
	return event.Unidentified{Scancode: scancode}
}
