package utils

import (
	"fmt"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation resolves a profile timezone string: GMT-X offsets come from
// a pre-defined locations map, anything else is tried as an IANA zone
// name. Returns nil when the string names no known zone.
func GetLocation(timezone string) *time.Location {
	if tz, ok := locations[strings.ToUpper(timezone)]; ok {
		return tz
	}
	if tz, err := time.LoadLocation(timezone); err == nil {
		return tz
	}
	return nil
}

// ValidTimezone reports whether a timezone string resolves to a zone.
func ValidTimezone(timezone string) bool {
	return GetLocation(timezone) != nil
}
