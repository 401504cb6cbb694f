package spaceage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanetsOrder(t *testing.T) {
	assert.Equal(t, []Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}, Planets())

	planets := Planets()
	planets[0] = Neptune
	assert.Equal(t, Mercury, Planets()[0], "Planets must return a copy")
}

func TestOrbitalPeriods(t *testing.T) {
	expected := map[Planet]float64{
		Mercury: 0.2408467,
		Venus:   0.61519726,
		Earth:   1.0,
		Mars:    1.8808158,
		Jupiter: 11.862615,
		Saturn:  29.447498,
		Uranus:  84.016846,
		Neptune: 164.79132,
	}
	for p, period := range expected {
		assert.Equal(t, period, p.OrbitalPeriod(), p.String())
	}
	assert.Zero(t, Planet("pluto").OrbitalPeriod())
}

func TestParsePlanet(t *testing.T) {
	p, err := ParsePlanet(" Jupiter ")
	require.NoError(t, err)
	assert.Equal(t, Jupiter, p)

	p, err = ParsePlanet("NEPTUNE")
	require.NoError(t, err)
	assert.Equal(t, Neptune, p)

	_, err = ParsePlanet("pluto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPlanet))

	_, err = ParsePlanet("")
	assert.ErrorIs(t, err, ErrUnknownPlanet)
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 1, Mercury.Position())
	assert.Equal(t, 3, Earth.Position())
	assert.Equal(t, 8, Neptune.Position())
	assert.Zero(t, Planet("pluto").Position())
}

func TestPlanetString(t *testing.T) {
	assert.Equal(t, "Mercury", Mercury.String())
	assert.Equal(t, "", Planet("").String())
	assert.Equal(t, "Ío", Planet("ío").String())
	assert.Equal(t, "Ärth", Planet("ärth").String())
}
