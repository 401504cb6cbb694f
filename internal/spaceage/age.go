package spaceage

// Orbiter is any body with an orbital period expressed in Earth years.
type Orbiter interface {
	OrbitalPeriod() float64
}

// Orbit is an explicit orbital period in Earth years.
type Orbit float64

func (o Orbit) OrbitalPeriod() float64 {
	return float64(o)
}

// YearsDuring converts d into the number of orbits body completes in that time.
// It panics with ErrDivisionByZero when the body's orbital period is zero.
func YearsDuring(d Duration, body Orbiter) float64 {
	return d.Div(EarthYearSeconds * body.OrbitalPeriod())
}

// YearsOnPlanet is the age in years on p for someone ageSeconds old.
func YearsOnPlanet(p Planet, ageSeconds uint64) float64 {
	return YearsDuring(FromSeconds(ageSeconds), p)
}
