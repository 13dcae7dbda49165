package event

// Key is the resolved, locale-aware identity of a key press. It is a
// closed set of variants; consumers are expected to type-switch over all
// of them.
type Key interface {
	isKey()
}

// Character is a key that produces text under the active layout.
type Character string

// Dead is a key that produces no character by itself but modifies the
// next keystroke. Combining is the combining character it applies, or 0
// when the layout reports none.
type Dead struct {
	Combining rune
}

// Named is a non-printable key with a locale-independent meaning
// (arrows, function keys, modifiers, navigation).
type Named KeySym

// AltGraph is the dedicated third-level shift key (right alt on layouts
// that have one).
type AltGraph struct{}

// Unidentified is a key the OS gave no information for. Scancode is the
// native code so the pipeline can still track the physical key.
type Unidentified struct {
	Scancode uint16
}

func (Character) isKey()    {}
func (Dead) isKey()         {}
func (Named) isKey()        {}
func (AltGraph) isKey()     {}
func (Unidentified) isKey() {}
