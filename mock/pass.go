package mock

import (
	"context"

	"github.com/fwojciec/alpenpass"
)

var _ alpenpass.PassParser = (*PassParser)(nil)

// PassParser is a mock implementation of alpenpass.PassParser.
type PassParser struct {
	ParsePassesFn func(html string) ([]*alpenpass.Pass, error)
}

func (p *PassParser) ParsePasses(html string) ([]*alpenpass.Pass, error) {
	return p.ParsePassesFn(html)
}

var _ alpenpass.PassService = (*PassService)(nil)

// PassService is a mock implementation of alpenpass.PassService.
type PassService struct {
	FindPassesFn                 func(ctx context.Context) ([]*alpenpass.Pass, error)
	FindPassByNameFn             func(ctx context.Context, name string) (*alpenpass.Pass, error)
	FindOpenPassesFn             func(ctx context.Context) ([]*alpenpass.Pass, error)
	FindPassesWithRestrictionsFn func(ctx context.Context) ([]*alpenpass.Pass, error)
}

func (s *PassService) FindPasses(ctx context.Context) ([]*alpenpass.Pass, error) {
	return s.FindPassesFn(ctx)
}

func (s *PassService) FindPassByName(ctx context.Context, name string) (*alpenpass.Pass, error) {
	return s.FindPassByNameFn(ctx, name)
}

func (s *PassService) FindOpenPasses(ctx context.Context) ([]*alpenpass.Pass, error) {
	return s.FindOpenPassesFn(ctx)
}

func (s *PassService) FindPassesWithRestrictions(ctx context.Context) ([]*alpenpass.Pass, error) {
	return s.FindPassesWithRestrictionsFn(ctx)
}
