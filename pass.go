package alpenpass

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// UnknownStatus is the status of a pass whose block carries no status keyword.
const UnknownStatus = "Unknown"

// Pass represents the current known state of one mountain pass as scraped
// from the overview page.
type Pass struct {
	Name   string `json:"name"`
	Route  string `json:"route"`  // "A - B", empty if not found
	Status string `json:"status"` // free text, UnknownStatus if not found

	// Temperature in degrees Celsius. Nil when the block has no temperature.
	Temperature *float64 `json:"temperature,omitempty"`

	// LastUpdate is the update label verbatim, e.g. "07.07.2025, 07:16".
	// It is never parsed into a time.Time because the site's format varies.
	LastUpdate string `json:"lastUpdate,omitempty"`

	URL string `json:"url"`

	// Elevation in metres. The page does not carry it; it is filled from
	// the catalog once the pass has been aligned to a catalog entry.
	Elevation *int `json:"elevation,omitempty"`

	// Notes holds restriction or winter-condition text, at most
	// MaxNotesLength characters plus an ellipsis.
	Notes string `json:"notes,omitempty"`
}

// MaxNotesLength is the number of characters kept from a notes text.
const MaxNotesLength = 200

// Validate returns an error if the pass contains invalid fields.
func (p *Pass) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "pass name required")
	}
	return nil
}

// String returns a one-line summary, e.g. "Albulapass (Preda - La Punt): Open - 12.5°C".
func (p *Pass) String() string {
	temp := "N/A"
	if p.Temperature != nil {
		temp = strconv.FormatFloat(*p.Temperature, 'f', -1, 64) + "°C"
	}
	return fmt.Sprintf("%s (%s): %s - %s", p.Name, p.Route, p.Status, temp)
}

var openKeywords = []string{"open", "offen", "befahrbar"}

var restrictionKeywords = []string{
	"restriction", "chain", "winter", "snow", "closed",
	"einschränkung", "ketten", "schnee", "gesperrt",
}

// IsOpen reports whether the status text says the pass is open.
func (p *Pass) IsOpen() bool {
	return containsAny(p.Status, openKeywords)
}

// negatedRestrictions are removed from a status before looking for
// restriction keywords, so "Open, no restrictions" is not restricted.
var negatedRestrictions = []string{
	"no restriction", "without restriction",
	"keine einschränkung", "ohne einschränkung",
}

// HasRestrictions reports whether the status text mentions a closure,
// chains, snow or any other restriction.
func (p *Pass) HasRestrictions() bool {
	status := strings.ToLower(p.Status)
	for _, phrase := range negatedRestrictions {
		status = strings.ReplaceAll(status, phrase, "")
	}
	return containsAny(status, restrictionKeywords)
}

// containsAny reports whether s contains any keyword, ignoring case.
// Keywords must be lower case.
func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	s = strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// FilterOpen returns the passes for which IsOpen is true, in order.
func FilterOpen(passes []*Pass) []*Pass {
	return filterPasses(passes, (*Pass).IsOpen)
}

// FilterRestricted returns the passes for which HasRestrictions is true, in order.
func FilterRestricted(passes []*Pass) []*Pass {
	return filterPasses(passes, (*Pass).HasRestrictions)
}

func filterPasses(passes []*Pass, keep func(*Pass) bool) []*Pass {
	result := make([]*Pass, 0, len(passes))
	for _, p := range passes {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}

// FindPassByName returns the first pass whose name contains name or is
// contained in name, ignoring case. Returns nil if none matches or name is empty.
func FindPassByName(passes []*Pass, name string) *Pass {
	if name == "" {
		return nil
	}
	for _, p := range passes {
		if namesMatch(p.Name, name) {
			return p
		}
	}
	return nil
}

// namesMatch implements the bidirectional, case-insensitive substring rule.
func namesMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// PassParser extracts pass records from an overview page.
type PassParser interface {
	// ParsePasses returns the passes found in html in document order,
	// deduplicated by exact name. Returns EINVALID if the page cannot be parsed.
	ParsePasses(html string) ([]*Pass, error)
}

// PassService provides the current pass records of the overview page.
// Every call fetches the page again; nothing is cached between calls.
//
// Transport and parse failures are not returned as errors: implementations
// log them and return an empty result. An error is returned only when ctx
// is canceled.
type PassService interface {
	// FindPasses returns all passes on the page in document order.
	FindPasses(ctx context.Context) ([]*Pass, error)

	// FindPassByName returns the first pass whose name matches name by
	// case-insensitive substring in either direction.
	// Returns ENOTFOUND if no pass matches.
	FindPassByName(ctx context.Context, name string) (*Pass, error)

	// FindOpenPasses returns the passes whose status reports them open.
	FindOpenPasses(ctx context.Context) ([]*Pass, error)

	// FindPassesWithRestrictions returns the passes whose status mentions
	// a closure or restriction.
	FindPassesWithRestrictions(ctx context.Context) ([]*Pass, error)
}
