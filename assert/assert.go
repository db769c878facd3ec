package assert

import "github.com/vestorino/Ballistic-Missile/oerror"

// IsTrue panics with a SimError if ok is false. It is used for invariants that can only be broken by a
// bug in the simulation itself, never by user input.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
