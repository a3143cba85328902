package alpenpass

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// temperatureRe matches "-5°C", "12°C", "5.5°C".
	temperatureRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)°C`)

	// looseTemperatureRe tolerates a missing degree marker. It also matches
	// unrelated numbers such as elevations, which is why it only runs when
	// temperatureRe finds nothing.
	looseTemperatureRe = regexp.MustCompile(`(-?\d+(?:\.\d+)?)\s*°?C?`)
)

// updateTimeRes are tried in order. The first one already matches the
// labelled forms, the labelled ones remain for text split across nodes.
// Separators include non-breaking spaces, which RE2's \s does not cover.
var updateTimeRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}\.\d{1,2}\.\d{4},?[\s\p{Zs}]+\d{1,2}:\d{2})`),
	regexp.MustCompile(`Updated on:[\s\p{Zs}]*(\d{1,2}\.\d{1,2}\.\d{4},?[\s\p{Zs}]+\d{1,2}:\d{2})`),
	regexp.MustCompile(`Aktualisiert am:[\s\p{Zs}]*(\d{1,2}\.\d{1,2}\.\d{4},?[\s\p{Zs}]+\d{1,2}:\d{2})`),
}

// ExtractTemperature returns the first temperature found in text, in degrees
// Celsius. Values followed by "°C" are preferred; otherwise the first number
// in the text is taken. Returns false if text contains no number.
func ExtractTemperature(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	for _, re := range []*regexp.Regexp{temperatureRe, looseTemperatureRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// ExtractUpdateTime returns the first "DD.MM.YYYY, HH:MM" timestamp in text,
// without any "Updated on:" or "Aktualisiert am:" label. The match is
// syntactic only, so "32.13.2025, 25:99" is returned as is.
func ExtractUpdateTime(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, re := range updateTimeRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
