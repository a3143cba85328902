package mock

import "github.com/fwojciec/alpenpass"

var _ alpenpass.SensorService = (*SensorService)(nil)

// SensorService is a mock implementation of alpenpass.SensorService.
type SensorService struct {
	SensorsFn func() []alpenpass.Sensor
}

func (s *SensorService) Sensors() []alpenpass.Sensor {
	return s.SensorsFn()
}

var _ alpenpass.NameMatcher = (*NameMatcher)(nil)

// NameMatcher is a mock implementation of alpenpass.NameMatcher.
type NameMatcher struct {
	MatchNameFn func(entry alpenpass.CatalogEntry, name string) bool
}

func (m *NameMatcher) MatchName(entry alpenpass.CatalogEntry, name string) bool {
	return m.MatchNameFn(entry, name)
}
