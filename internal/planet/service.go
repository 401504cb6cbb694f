package planet

import (
	"context"
	"log/slog"
	"math"

	"space-age/internal/shared/errors"
	"space-age/internal/shared/metrics"
	"space-age/internal/spaceage"
)

type Store interface {
	GetPlanets(ctx context.Context) ([]Planet, error)
}

type CatalogCache interface {
	Get(ctx context.Context) ([]Planet, bool, error)
	Set(ctx context.Context, planets []Planet) error
}

// Service converts ages against an orbital period catalog. The catalog starts
// as the built-in table and may be replaced once by LoadCatalog before the
// service is shared between goroutines.
type Service struct {
	store   Store
	cache   CatalogCache
	metrics *metrics.Collector
	logger  *slog.Logger

	catalog map[spaceage.Planet]Planet
	source  CatalogSource
}

// NewService accepts a nil store or cache when the backing service is disabled.
func NewService(store Store, cache CatalogCache, collector *metrics.Collector, logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	catalog, _ := buildCatalog(BuiltinPlanets())
	return &Service{
		store:   store,
		cache:   cache,
		metrics: collector,
		logger:  logger,
		catalog: catalog,
		source:  CatalogSourceBuiltin,
	}
}

// BuiltinPlanets returns the compiled-in orbital period table.
func BuiltinPlanets() []Planet {
	planets := make([]Planet, 0, len(spaceage.Planets()))
	for _, p := range spaceage.Planets() {
		planets = append(planets, Planet{
			Name:          string(p),
			Position:      p.Position(),
			OrbitalPeriod: p.OrbitalPeriod(),
		})
	}
	return planets
}

// LoadCatalog resolves the catalog from the cache, then the store, falling
// back to the built-in table when neither is configured.
func (s *Service) LoadCatalog(ctx context.Context) error {
	logger := s.logger.With("component", "planet_service", "operation", "load_catalog")

	if s.cache != nil {
		planets, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			logger.Warn("Failed to read catalog cache, falling through", "error", err)
		case ok:
			catalog, err := buildCatalog(planets)
			if err == nil {
				s.use(catalog, CatalogSourceCache)
				logger.Info("Catalog loaded", "source", s.source, "count", len(catalog))
				return nil
			}
			logger.Warn("Ignoring invalid cached catalog", "error", err)
		}
	}

	if s.store == nil {
		s.use(s.catalog, CatalogSourceBuiltin)
		logger.Info("Catalog loaded", "source", s.source, "count", len(s.catalog))
		return nil
	}

	planets, err := s.store.GetPlanets(ctx)
	if err != nil {
		return errors.WrapExternal("failed to load orbital periods", err)
	}

	catalog, err := buildCatalog(planets)
	if err != nil {
		return err
	}
	s.use(catalog, CatalogSourceDatabase)

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.Catalog()); err != nil {
			logger.Warn("Failed to cache catalog", "error", err)
		}
	}

	logger.Info("Catalog loaded", "source", s.source, "count", len(catalog))
	return nil
}

func (s *Service) use(catalog map[spaceage.Planet]Planet, source CatalogSource) {
	s.catalog = catalog
	s.source = source
	s.metrics.SetCatalogSource(string(source))
}

func (s *Service) Source() CatalogSource {
	return s.source
}

// Catalog returns the planets ordered by distance from the sun.
func (s *Service) Catalog() []Planet {
	planets := make([]Planet, 0, len(s.catalog))
	for _, p := range spaceage.Planets() {
		planets = append(planets, s.catalog[p])
	}
	return planets
}

func (s *Service) Age(name string, seconds uint64) (*Age, error) {
	p, err := spaceage.ParsePlanet(name)
	if err != nil {
		return nil, errors.NotFoundf("planet %q not found", name)
	}

	age := s.convert(s.catalog[p], seconds)
	return &age, nil
}

// Ages converts seconds for every planet, innermost first.
func (s *Service) Ages(seconds uint64) []Age {
	ages := make([]Age, 0, len(s.catalog))
	for _, p := range s.Catalog() {
		ages = append(ages, s.convert(p, seconds))
	}
	return ages
}

func (s *Service) convert(p Planet, seconds uint64) Age {
	years := spaceage.YearsDuring(spaceage.FromSeconds(seconds), spaceage.Orbit(p.OrbitalPeriod))
	s.metrics.RecordConversion(p.Name)

	return Age{
		Planet:        p.Name,
		Seconds:       seconds,
		OrbitalPeriod: p.OrbitalPeriod,
		Years:         years,
	}
}

// buildCatalog requires exactly the eight planets, each with a finite,
// positive orbital period.
func buildCatalog(planets []Planet) (map[spaceage.Planet]Planet, error) {
	expected := spaceage.Planets()
	if len(planets) != len(expected) {
		return nil, errors.Validationf("catalog must list %d planets, got %d", len(expected), len(planets))
	}

	catalog := make(map[spaceage.Planet]Planet, len(planets))
	for _, entry := range planets {
		p, err := spaceage.ParsePlanet(entry.Name)
		if err != nil {
			return nil, errors.WrapValidation("invalid catalog entry", err)
		}
		if _, dup := catalog[p]; dup {
			return nil, errors.Validationf("planet %s listed more than once", string(p))
		}
		if entry.OrbitalPeriod <= 0 || math.IsNaN(entry.OrbitalPeriod) || math.IsInf(entry.OrbitalPeriod, 0) {
			return nil, errors.Validationf("orbital period for %s must be positive, got %v", string(p), entry.OrbitalPeriod)
		}

		catalog[p] = Planet{
			Name:          string(p),
			Position:      p.Position(),
			OrbitalPeriod: entry.OrbitalPeriod,
		}
	}

	return catalog, nil
}
