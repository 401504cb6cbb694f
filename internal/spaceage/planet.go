package spaceage

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EarthYearSeconds is 365.25 days of 86400 seconds.
const EarthYearSeconds = 31557600

var ErrUnknownPlanet = errors.New("unknown planet")

type Planet string

const (
	Mercury Planet = "mercury"
	Venus   Planet = "venus"
	Earth   Planet = "earth"
	Mars    Planet = "mars"
	Jupiter Planet = "jupiter"
	Saturn  Planet = "saturn"
	Uranus  Planet = "uranus"
	Neptune Planet = "neptune"
)

// Orbital periods in Earth years.
var orbitalPeriods = map[Planet]float64{
	Mercury: 0.2408467,
	Venus:   0.61519726,
	Earth:   1.0,
	Mars:    1.8808158,
	Jupiter: 11.862615,
	Saturn:  29.447498,
	Uranus:  84.016846,
	Neptune: 164.79132,
}

var planetOrder = []Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// Planets returns the eight planets ordered by distance from the sun.
func Planets() []Planet {
	out := make([]Planet, len(planetOrder))
	copy(out, planetOrder)
	return out
}

// ParsePlanet resolves a case-insensitive planet name.
func ParsePlanet(name string) (Planet, error) {
	p := Planet(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := orbitalPeriods[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
	}
	return p, nil
}

// OrbitalPeriod returns the planet's orbital period in Earth years, or zero
// for a value outside the eight known planets.
func (p Planet) OrbitalPeriod() float64 {
	return orbitalPeriods[p]
}

// Position is the planet's 1-based order from the sun, or zero if unknown.
func (p Planet) Position() int {
	for i, candidate := range planetOrder {
		if candidate == p {
			return i + 1
		}
	}
	return 0
}

func (p Planet) YearsDuring(d Duration) float64 {
	return YearsDuring(d, p)
}

func (p Planet) String() string {
	r, size := utf8.DecodeRuneInString(string(p))
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + string(p[size:])
}
