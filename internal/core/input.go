package core

// Key is one of the five logical keys the simulation reads.
type Key int

const (
	KeyLeftUp    Key = iota // W
	KeyLeftDown             // S
	KeyRightUp              // Up arrow
	KeyRightDown            // Down arrow
	KeyServe                // Space
	KeyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeftUp:
		return "LeftUp"
	case KeyLeftDown:
		return "LeftDown"
	case KeyRightUp:
		return "RightUp"
	case KeyRightDown:
		return "RightDown"
	case KeyServe:
		return "Serve"
	default:
		return "Unknown"
	}
}

// KeyState holds which logical keys are down this frame.
// The host writes it; the simulation only reads it.
type KeyState [KeyCount]bool

// Down reports whether k is held. Panics on an out-of-range key.
func (s *KeyState) Down(k Key) bool {
	if k < 0 || k >= KeyCount {
		panic("core: key index out of range")
	}
	return s[k]
}

// Set marks k as held or released.
func (s *KeyState) Set(k Key, down bool) {
	if k < 0 || k >= KeyCount {
		panic("core: key index out of range")
	}
	s[k] = down
}

// Mask packs the state into one bit per key, KeyLeftUp in bit 0.
func (s *KeyState) Mask() uint8 {
	var m uint8
	for k := range KeyCount {
		if s[k] {
			m |= 1 << uint(k)
		}
	}
	return m
}

// KeyStateFromMask is the inverse of Mask.
func KeyStateFromMask(m uint8) KeyState {
	var s KeyState
	for k := range KeyCount {
		s[k] = m&(1<<uint(k)) != 0
	}
	return s
}
