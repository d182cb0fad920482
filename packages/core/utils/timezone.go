package utils

import "github.com/bradfitz/latlong"

// TimezoneAt looks up the IANA timezone covering the given coordinates.
// Returns nil when no zone covers the point (open ocean).
func TimezoneAt(latitude, longitude float64) *string {
	name := latlong.LookupZoneName(latitude, longitude)
	if name == "" {
		return nil
	}
	return &name
}
