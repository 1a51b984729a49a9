package message

import (
	"math/rand"
	"strings"
)

var boundaryChars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// GenerateBoundary will generate a random MIME boundary that is probably
// unique in most circumstances.
func GenerateBoundary() string {
	s := make([]rune, 30)
	for i := range s {
		s[i] = boundaryChars[rand.Intn(len(boundaryChars))]
	}
	return string(s)
}

// GenerateSafeBoundary will generate a random MIME boundary that is
// guaranteed not to collide with the given corpus of data. Use this when you
// want to generate a boundary for a known set of parts. Using this is likely
// to be total overkill, but in case you're paranoid.
func GenerateSafeBoundary(contents string) string {
	for {
		boundary := GenerateBoundary()
		if !strings.Contains(contents, boundary) {
			return boundary
		}
	}
}
