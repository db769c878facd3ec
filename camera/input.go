package camera

// Key is a physical key the simulation reacts to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyR
	KeyL
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
)

// KeySet is a bitmap of held keys. The zero value has nothing pressed.
type KeySet uint32

// Pressed reports whether the key is held. Keys that were never reported are not pressed.
func (s KeySet) Pressed(k Key) bool {
	return k != KeyUnknown && s&(1<<k) != 0
}

func (s KeySet) with(k Key) KeySet {
	if k == KeyUnknown {
		return s
	}
	return s | 1<<k
}

func (s KeySet) without(k Key) KeySet {
	return s &^ (1 << k)
}

// LockChange reports a change of the pointer lock during a tick.
type LockChange uint8

const (
	LockUnchanged LockChange = iota
	LockAcquired
	LockReleased
)

// KeyEvent is a single key transition.
type KeyEvent struct {
	Key  Key
	Down bool
}

// Input is the user input collected since the previous tick.
type Input struct {
	// Keys lists key transitions in the order they happened.
	Keys []KeyEvent
	// PointerDX and PointerDY are the pointer movement in pixels.
	PointerDX, PointerDY float64
	Lock                 LockChange
}
