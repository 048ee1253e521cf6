package analysis

import (
	"strings"

	tz "github.com/medama-io/go-timezone-country"
	"github.com/thlib/go-timezone-local/tzlocal"
)

// MainsFrequency returns the local mains frequency in Hz (50 or 60), detected
// from the system timezone. Returns 50 if detection fails.
func MainsFrequency() int {
	timezone, err := tzlocal.RuntimeTZ()
	if err != nil {
		return 50
	}
	return MainsFrequencyForTimezone(timezone)
}

// MainsFrequencyForTimezone returns the mains frequency for an IANA timezone.
func MainsFrequencyForTimezone(timezone string) int {
	// UTC/GMT have no country association
	if timezone == "UTC" || timezone == "GMT" || strings.HasPrefix(timezone, "Etc/") {
		return 50
	}

	tzMap, err := tz.NewTimezoneCountryMap()
	if err != nil {
		return 50
	}

	country, err := tzMap.GetCountry(timezone)
	if err != nil {
		return 50
	}

	// Japan is split 50/60Hz by region; the Tokyo side is 50Hz
	if country == "Japan" {
		return 50
	}
	if hz60Countries[country] {
		return 60
	}
	return 50
}

// hz60Countries lists countries on 60Hz mains power; everywhere else is 50Hz.
var hz60Countries = map[string]bool{
	"United States":       true,
	"Canada":              true,
	"Mexico":              true,
	"Belize":              true,
	"Costa Rica":          true,
	"El Salvador":         true,
	"Guatemala":           true,
	"Honduras":            true,
	"Nicaragua":           true,
	"Panama":              true,
	"Bahamas":             true,
	"Cuba":                true,
	"Dominican Republic":  true,
	"Haiti":               true,
	"Jamaica":             true,
	"Puerto Rico":         true,
	"Trinidad and Tobago": true,
	"Brazil":              true,
	"Colombia":            true,
	"Ecuador":             true,
	"Guyana":              true,
	"Peru":                true,
	"Suriname":            true,
	"Venezuela":           true,
	"South Korea":         true,
	"Taiwan":              true,
	"Philippines":         true,
	"Saudi Arabia":        true,
	"Guam":                true,
	"American Samoa":      true,
}

// HumRatio returns the fraction of spectral energy within ±2Hz of humHz,
// a coarse indicator of mains hum leaking into generated audio. Uses the
// same bounded channel-0 spectrum as Flatness. Returns NotComputable when
// the spectrum is unavailable or the sample rate is unusable.
func HumRatio(samples []float64, channels, sampleRate, humHz int) float64 {
	if sampleRate <= 0 || humHz <= 0 {
		return NotComputable
	}

	mono := channelZero(samples, channels)
	if len(mono) < minSpectrumSamples {
		return NotComputable
	}
	if len(mono) > maxSpectrumSamples {
		mono = mono[:maxSpectrumSamples]
	}

	mags := magnitudeSpectrum(mono)

	// Bin i (after dropping DC) sits at (i+1)*rate/n Hz
	binHz := float64(sampleRate) / float64(len(mono))
	var humEnergy, totalEnergy float64
	for i, m := range mags {
		e := m * m
		totalEnergy += e
		freq := float64(i+1) * binHz
		if freq >= float64(humHz)-2.0 && freq <= float64(humHz)+2.0 {
			humEnergy += e
		}
	}

	if totalEnergy == 0 {
		return 0.0
	}
	return humEnergy / totalEnergy
}
