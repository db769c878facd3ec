package flightsim

import (
	"math"

	"github.com/vestorino/Ballistic-Missile/game"
)

// AirDensity returns the density of air at the given altitude using an exponential atmosphere. Negative
// altitudes are treated as sea level so that a body below the ground never sees denser air.
func AirDensity(altitude float64) float64 {
	return game.SeaLevelAirDensity * math.Exp(-math.Max(altitude, 0)/game.AtmosphereScaleHeight)
}
