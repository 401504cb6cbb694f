package planet

// Planet is one entry of the orbital period catalog.
type Planet struct {
	Name          string  `json:"name"`
	Position      int     `json:"position"`
	OrbitalPeriod float64 `json:"orbital_period"`
}

// Age is an age in seconds expressed in years of a single planet.
type Age struct {
	Planet        string  `json:"planet"`
	Seconds       uint64  `json:"seconds"`
	OrbitalPeriod float64 `json:"orbital_period"`
	Years         float64 `json:"years"`
}

type CatalogSource string

const (
	CatalogSourceBuiltin  CatalogSource = "builtin"
	CatalogSourceCache    CatalogSource = "cache"
	CatalogSourceDatabase CatalogSource = "database"
)
