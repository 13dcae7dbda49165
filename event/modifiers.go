package event

// KeyModifiers is the normalized, OS-independent modifier bitset handed to
// the input pipeline.
type KeyModifiers uint32

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModSuper // windows/logo key
)

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}

// With returns km with m set or cleared.
func (km KeyModifiers) With(m KeyModifiers, on bool) KeyModifiers {
	if on {
		return km | m
	}
	return km &^ m
}
