// Package scrape implements alpenpass.PassService on top of a Fetcher and a
// PassParser. Each call fetches the overview page of one language once and
// parses it; there is no caching, retry or scheduling at this level.
package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/alpenpass"
)

var _ alpenpass.PassService = (*Service)(nil)

// Service fetches and parses the overview page of one language.
type Service struct {
	fetcher  alpenpass.Fetcher
	parser   alpenpass.PassParser
	language alpenpass.Language
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger that receives swallowed fetch and parse errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service for the given language code.
// Returns EINVALID if language is not "en" or "de".
func NewService(fetcher alpenpass.Fetcher, parser alpenpass.PassParser, language string, opts ...Option) (*Service, error) {
	lang, err := alpenpass.ParseLanguage(language)
	if err != nil {
		return nil, err
	}

	s := &Service{
		fetcher:  fetcher,
		parser:   parser,
		language: lang,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s, nil
}

// Language returns the language whose page the service scrapes.
func (s *Service) Language() alpenpass.Language {
	return s.language
}

// FindPasses fetches the overview page and returns every pass on it.
// A failed fetch or an unparseable page yields an empty slice.
func (s *Service) FindPasses(ctx context.Context) ([]*alpenpass.Pass, error) {
	url := s.language.PageURL()

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.Error("failed to fetch pass overview", "url", url, "err", err)
		return []*alpenpass.Pass{}, nil
	}

	passes, err := s.parser.ParsePasses(page)
	if err != nil {
		s.logger.Error("failed to parse pass overview", "url", url, "err", err)
		return []*alpenpass.Pass{}, nil
	}
	return passes, nil
}

// FindPassByName returns the first pass whose name contains name or is
// contained in it, ignoring case.
func (s *Service) FindPassByName(ctx context.Context, name string) (*alpenpass.Pass, error) {
	if name == "" {
		return nil, alpenpass.Errorf(alpenpass.EINVALID, "pass name required")
	}

	passes, err := s.FindPasses(ctx)
	if err != nil {
		return nil, err
	}
	if p := alpenpass.FindPassByName(passes, name); p != nil {
		return p, nil
	}
	return nil, alpenpass.Errorf(alpenpass.ENOTFOUND, "pass %q not found", name)
}

// FindOpenPasses returns the passes reported open.
func (s *Service) FindOpenPasses(ctx context.Context) ([]*alpenpass.Pass, error) {
	passes, err := s.FindPasses(ctx)
	if err != nil {
		return nil, err
	}
	return alpenpass.FilterOpen(passes), nil
}

// FindPassesWithRestrictions returns the passes whose status mentions a
// closure or restriction.
func (s *Service) FindPassesWithRestrictions(ctx context.Context) ([]*alpenpass.Pass, error) {
	passes, err := s.FindPasses(ctx)
	if err != nil {
		return nil, err
	}
	return alpenpass.FilterRestricted(passes), nil
}
