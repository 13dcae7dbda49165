package windriver

// NativeAPI is the narrow boundary to the OS keyboard interface. The
// layout code is written against it so isolated instances can be driven
// by scripted implementations; SystemAPI is the real user32 binding.
type NativeAPI interface {
	// ActiveLocale returns the locale id of the active keyboard layout.
	ActiveLocale() uint64

	// MapVirtualKey maps a virtual key to an extended scancode under the
	// given locale. Zero means the key does not exist under this locale.
	MapVirtualKey(vk uint32, locale uint64) uint32

	// ToUnicode invokes the OS composition call with a synthetic key
	// state array. Returns the number of utf16 units written to buf, 0
	// for no result, or a negative value signaling a dead key. Note: a
	// call that hits a dead key leaves composition state behind in the
	// OS; a second identical call consumes it.
	ToUnicode(vk, scancode uint32, keyState *[256]byte, buf []uint16, locale uint64) int

	// KeyPressed reports whether the virtual key is currently down.
	KeyPressed(vk int32) bool
}
