package camera

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vestorino/Ballistic-Missile/oerror"
)

// Mode selects how the camera pose is computed each tick. The set of modes is closed: Controller.Update
// switches over every value.
type Mode uint8

const (
	// ModeOverview orbits the launch site.
	ModeOverview Mode = iota
	// ModeFollow trails the missile in its body frame.
	ModeFollow
	// ModeFixed watches from a fixed point near the pad.
	ModeFixed
	// ModeFree is a fly camera driven by pointer and keyboard.
	ModeFree
	// ModeCinematic frames the flight differently for each phase.
	ModeCinematic
	// ModeFirstPerson sits on the nose of the missile.
	ModeFirstPerson

	modeCount
)

var modeNames = [...]string{
	ModeOverview:    "overview",
	ModeFollow:      "follow",
	ModeFixed:       "fixed",
	ModeFree:        "free",
	ModeCinematic:   "cinematic",
	ModeFirstPerson: "first-person",
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "unknown"
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Modes returns every mode in selector order.
func Modes() []Mode {
	modes := make([]Mode, 0, modeCount)
	for m := range modeCount {
		modes = append(modes, m)
	}
	return modes
}

// ParseMode returns the mode with the given name, as used by the mode selector and settings files.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := lo.IndexOf(modeNames[:], name); i >= 0 {
		return Mode(i), nil
	}
	return ModeOverview, oerror.New("unknown camera mode %q", name)
}
