package alpenpass

import "slices"

// CatalogEntry is static reference data for one known pass. The scraped
// name is not a stable key across languages and page revisions, so the
// catalog key is used to identify a pass in configuration and storage.
type CatalogEntry struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	URLPath   string `json:"urlPath"`
	Route     string `json:"route"`
	Elevation int    `json:"elevation"` // metres above sea level
}

// MatchesName reports whether a scraped pass name refers to this entry:
// either name contains the other, ignoring case.
func (e CatalogEntry) MatchesName(name string) bool {
	return namesMatch(e.Name, name)
}

// DetailURL returns the entry's detail page in the given language.
func (e CatalogEntry) DetailURL(lang Language) string {
	return BaseURL + "/" + string(lang) + PassPathMarker + e.URLPath
}

// catalog is sorted by key.
var catalog = []CatalogEntry{
	{Key: "albulapass", Name: "Albulapass", URLPath: "albulapass", Route: "Preda - La Punt Chamues-ch", Elevation: 2312},
	{Key: "berninapass", Name: "Berninapass", URLPath: "berninapass", Route: "Pontresina - San Carlo", Elevation: 2328},
	{Key: "bruenigpass", Name: "Brünigpass", URLPath: "bruenigpass", Route: "Lungern - Brienzwiler", Elevation: 1008},
	{Key: "flueelapass", Name: "Flüelapass", URLPath: "flueelapass", Route: "Tschuggen - Susch", Elevation: 2383},
	{Key: "forcola_di_livigno", Name: "Forcola di Livigno", URLPath: "forcola-di-livigno", Route: "La Motta - Landesgrenze", Elevation: 2315},
	{Key: "furkapass", Name: "Furkapass", URLPath: "furkapass", Route: "Realp - Oberwald", Elevation: 2429},
	{Key: "glaubenbergpass", Name: "Glaubenbergpass", URLPath: "glaubenbergpass", Route: "Sarnen - Entlebuch", Elevation: 1543},
	{Key: "glaubenbielenpass", Name: "Glaubenbielenpass", URLPath: "glaubenbielenpass", Route: "Giswil - Sörenberg", Elevation: 1611},
	{Key: "gotthardpass", Name: "Gotthardpass", URLPath: "gotthardpass", Route: "Göschenen - Airolo", Elevation: 2106},
	{Key: "grimselpass", Name: "Grimselpass", URLPath: "grimselpass", Route: "Innertkirchen - Oberwald", Elevation: 2164},
	{Key: "grosser_st_bernhard", Name: "Grosser St. Bernhard", URLPath: "grosser-st-bernhard", Route: "Bourg-Saint-Pierre - Landesgrenze", Elevation: 2469},
	{Key: "julierpass", Name: "Julierpass", URLPath: "julierpass", Route: "Tiefencastel - Silvaplana", Elevation: 2284},
	{Key: "klausenpass", Name: "Klausenpass", URLPath: "klausenpass", Route: "Altdorf - Linthal", Elevation: 1948},
	{Key: "lukmanierpass", Name: "Lukmanierpass", URLPath: "lukmanierpass", Route: "Disentis - Biasca", Elevation: 1915},
	{Key: "malojapass", Name: "Malojapass", URLPath: "malojapass", Route: "Silvaplana - Chiavenna", Elevation: 1815},
	{Key: "nufenenpass", Name: "Nufenenpass", URLPath: "nufenenpass", Route: "Ulrichen - Airolo", Elevation: 2478},
	{Key: "oberalppass", Name: "Oberalppass", URLPath: "oberalppass", Route: "Andermatt - Disentis", Elevation: 2044},
	{Key: "san_bernardino", Name: "San Bernardino", URLPath: "san-bernardino", Route: "Splügen - Bellinzona", Elevation: 2065},
	{Key: "simplon", Name: "Simplon", URLPath: "simplon", Route: "Brig - Domodossola", Elevation: 2005},
	{Key: "spluegenpass", Name: "Splügenpass", URLPath: "spluegenpass", Route: "Thusis - Chiavenna", Elevation: 2113},
	{Key: "sustenpass", Name: "Sustenpass", URLPath: "sustenpass", Route: "Innertkirchen - Wassen", Elevation: 2224},
	{Key: "umbrailpass", Name: "Umbrailpass", URLPath: "umbrailpass", Route: "Sta. Maria - Bormio", Elevation: 2501},
}

// Catalog returns a copy of all known passes, sorted by key.
func Catalog() []CatalogEntry {
	return slices.Clone(catalog)
}

// CatalogKeys returns all catalog keys in sorted order.
func CatalogKeys() []string {
	keys := make([]string, len(catalog))
	for i, e := range catalog {
		keys[i] = e.Key
	}
	return keys
}

// LookupCatalog returns the entry for key.
// Returns ENOTFOUND if the key is not in the catalog.
func LookupCatalog(key string) (CatalogEntry, error) {
	i, ok := slices.BinarySearchFunc(catalog, key, func(e CatalogEntry, k string) int {
		switch {
		case e.Key < k:
			return -1
		case e.Key > k:
			return 1
		}
		return 0
	})
	if !ok {
		return CatalogEntry{}, Errorf(ENOTFOUND, "unknown pass %q", key)
	}
	return catalog[i], nil
}

// ValidateSelection checks a user's pass selection: at least one key,
// all of them known to the catalog.
func ValidateSelection(keys []string) error {
	if len(keys) == 0 {
		return Errorf(EINVALID, "at least one pass must be selected")
	}
	for _, k := range keys {
		if _, err := LookupCatalog(k); err != nil {
			return Errorf(EINVALID, "unknown pass %q", k)
		}
	}
	return nil
}

// NameMatcher decides whether a scraped pass name refers to a catalog entry.
// It is consulted for entries the substring rule of MatchesName could not
// resolve.
type NameMatcher interface {
	MatchName(entry CatalogEntry, name string) bool
}
