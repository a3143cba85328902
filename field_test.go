package alpenpass_test

import (
	"testing"

	"github.com/fwojciec/alpenpass"
	"github.com/stretchr/testify/assert"
)

func TestExtractTemperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   float64
		wantOK bool
	}{
		{name: "integer", text: "12°C", want: 12, wantOK: true},
		{name: "negative", text: "-5°C", want: -5, wantOK: true},
		{name: "decimal", text: "5.5°C", want: 5.5, wantOK: true},
		{name: "embedded in text", text: "Temperatur: -3.5°C am Passhöhe", want: -3.5, wantOK: true},
		{name: "first of several", text: "4°C / 9°C", want: 4, wantOK: true},
		{name: "missing degree sign", text: "7 C", want: 7, wantOK: true},
		{name: "bare number", text: "around 3 degrees", want: 3, wantOK: true},
		{name: "no digits", text: "Open, no restrictions", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := alpenpass.ExtractTemperature(tt.text)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestExtractTemperature_PrefersDegreeMarker(t *testing.T) {
	t.Parallel()

	// The elevation comes first, but the marked value wins.
	got, ok := alpenpass.ExtractTemperature("2106 m, 8°C")

	assert.True(t, ok)
	assert.InDelta(t, 8.0, got, 1e-9)
}

func TestExtractTemperature_LooseFallbackMatchesUnrelatedNumbers(t *testing.T) {
	t.Parallel()

	// Known limitation: without a degree marker any number is taken,
	// including an elevation.
	got, ok := alpenpass.ExtractTemperature("Passhöhe 2106 m")

	assert.True(t, ok)
	assert.InDelta(t, 2106.0, got, 1e-9)
}

func TestExtractUpdateTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "bare timestamp", text: "07.07.2025, 07:16", want: "07.07.2025, 07:16", wantOK: true},
		{name: "english label", text: "Updated on: 07.07.2025, 07:16", want: "07.07.2025, 07:16", wantOK: true},
		{name: "german label", text: "Aktualisiert am: 7.7.2025, 7:16", want: "7.7.2025, 7:16", wantOK: true},
		{name: "without comma", text: "Updated on: 01.12.2024 18:05", want: "01.12.2024 18:05", wantOK: true},
		{name: "surrounding whitespace", text: "\n\t 07.07.2025,   07:16 \n", want: "07.07.2025,   07:16", wantOK: true},
		{name: "non-breaking space after comma", text: "07.07.2025,\u00a007:16", want: "07.07.2025,\u00a007:16", wantOK: true},
		{name: "german label with non-breaking spaces", text: "Aktualisiert am:\u00a007.07.2025\u00a007:16", want: "07.07.2025\u00a007:16", wantOK: true},
		{name: "calendar is not validated", text: "32.13.2025, 25:99", want: "32.13.2025, 25:99", wantOK: true},
		{name: "date without time", text: "07.07.2025", wantOK: false},
		{name: "no timestamp", text: "Open, no restrictions", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := alpenpass.ExtractUpdateTime(tt.text)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
