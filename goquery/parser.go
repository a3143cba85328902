// Package goquery extracts pass records from the alpen-paesse.ch overview
// page using goquery and the golang.org/x/net/html node tree.
package goquery

import (
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/alpenpass"
	"golang.org/x/net/html"
)

// DefaultMaxDepth caps how many ancestors of a pass link are inspected
// when looking for its block.
const DefaultMaxDepth = 12

// maxRouteLength separates a route line ("A - B") from longer prose.
const maxRouteLength = 100

// minNotesLength is the length a notes text must exceed.
const minNotesLength = 20

var statusKeywords = []string{
	"open", "offen", "closed", "gesperrt", "befahrbar", "restriction",
}

var notesKeywords = []string{
	"winter", "snow", "chain", "restriction", "obligatory",
	"schnee", "ketten", "einschränkung", "obligatorisch",
}

var _ alpenpass.PassParser = (*Parser)(nil)

// Parser locates one block per pass link on the overview page and builds a
// pass record from the block's text nodes. Every field takes the first
// text node that qualifies. A Parser holds no state between calls.
type Parser struct {
	base     *url.URL
	maxDepth int
	logger   *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets how many ancestors are inspected per link.
// Defaults to DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithLogger sets the logger that reports skipped blocks.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser that resolves pass links against baseURL.
// Returns EINVALID if baseURL is not an absolute URL.
func NewParser(baseURL string, opts ...Option) (*Parser, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, alpenpass.Errorf(alpenpass.EINVALID, "invalid base URL %q", baseURL)
	}

	p := &Parser{
		base:     base,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p, nil
}

// ParsePasses returns the passes found on the page in document order,
// deduplicated by exact name with the first occurrence kept. A block that
// fails to parse is logged and skipped.
func (p *Parser) ParsePasses(page string) ([]*alpenpass.Pass, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, alpenpass.Errorf(alpenpass.EINVALID, "failed to parse HTML: %v", err)
	}

	passes := []*alpenpass.Pass{}
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, alpenpass.PassPathMarker) {
			return
		}

		block := findBlock(sel.Get(0), p.maxDepth)
		if block == nil {
			return
		}

		pass, err := p.parseBlock(block)
		if err != nil {
			p.logger.Warn("skipping pass block", "href", href, "err", err)
			return
		}
		if seen[pass.Name] {
			return
		}
		seen[pass.Name] = true
		passes = append(passes, pass)
	})

	return passes, nil
}

// parseBlock builds a pass from a block. A panic while walking the block
// is turned into an error so one malformed block cannot abort the page.
func (p *Parser) parseBlock(block *html.Node) (pass *alpenpass.Pass, err error) {
	defer func() {
		if r := recover(); r != nil {
			pass, err = nil, alpenpass.Errorf(alpenpass.EINTERNAL, "parse pass block: %v", r)
		}
	}()

	link := firstLink(block)
	if link == nil {
		return nil, alpenpass.Errorf(alpenpass.EINVALID, "pass block has no link")
	}

	pass = &alpenpass.Pass{
		Name:   strippedText(link),
		Status: alpenpass.UnknownStatus,
	}
	if err := pass.Validate(); err != nil {
		return nil, err
	}
	if href := attr(link, "href"); href != "" {
		pass.URL = p.resolve(href)
	}

	var haveRoute, haveStatus, haveTemp, haveUpdate, haveNotes bool
	for text := range textNodes(block) {
		trimmed := strings.TrimSpace(text)

		if !haveRoute && strings.Contains(trimmed, " - ") && utf8.RuneCountInString(trimmed) < maxRouteLength {
			pass.Route, haveRoute = trimmed, true
		}
		if !haveStatus && containsKeyword(trimmed, statusKeywords) {
			pass.Status, haveStatus = trimmed, true
		}
		if !haveTemp {
			if v, ok := alpenpass.ExtractTemperature(text); ok {
				pass.Temperature, haveTemp = &v, true
			}
		}
		if !haveUpdate {
			if v, ok := alpenpass.ExtractUpdateTime(text); ok {
				pass.LastUpdate, haveUpdate = v, true
			}
		}
		if !haveNotes && containsKeyword(trimmed, notesKeywords) && utf8.RuneCountInString(trimmed) > minNotesLength {
			pass.Notes, haveNotes = truncateNotes(trimmed), true
		}
	}

	return pass, nil
}

// resolve makes href absolute against the parser's base URL.
func (p *Parser) resolve(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return p.base.ResolveReference(ref).String()
}

func truncateNotes(s string) string {
	runes := []rune(s)
	if len(runes) <= alpenpass.MaxNotesLength {
		return s
	}
	return string(runes[:alpenpass.MaxNotesLength]) + "..."
}
