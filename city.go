package busroutes

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// City is a place served by one or more bus routes, as listed on the
// schedule index page.
type City struct {
	Name       string   `json:"name"`
	BusNumbers []string `json:"busNumbers"`
}

// Validate returns an error if the city contains invalid fields.
// A city with no bus numbers is valid.
func (c *City) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Errorf(EINVALID, "city name required")
	}
	return nil
}

// ValidateInitial returns an error unless s is exactly one letter.
func ValidateInitial(s string) error {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || !unicode.IsLetter(r) {
		return Errorf(EINVALID, "%q is not a single letter", s)
	}
	return nil
}

// CitiesByInitial returns the cities whose name starts with letter, compared
// case-insensitively, in their original order. found reports whether at
// least one city matched.
func CitiesByInitial(cities []City, letter string) (matches []City, found bool) {
	want, size := utf8.DecodeRuneInString(letter)
	if size == 0 {
		return nil, false
	}
	want = unicode.ToLower(want)

	for _, c := range cities {
		first, n := utf8.DecodeRuneInString(c.Name)
		if n == 0 {
			continue
		}
		if unicode.ToLower(first) == want {
			matches = append(matches, c)
		}
	}
	return matches, len(matches) > 0
}
