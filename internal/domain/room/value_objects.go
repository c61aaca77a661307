package room

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInvalidName     = errors.New("room name must be 3-100 printable characters")
	ErrInvalidLocation = errors.New("room location must be at most 100 printable characters")
	ErrInvalidCapacity = errors.New("room capacity must be at least 1")
)

const (
	minNameLength     = 3
	maxNameLength     = 100
	maxLocationLength = 100
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minNameLength || n > maxNameLength || hasControl(s) {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string { return n.value }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxLocationLength || hasControl(s) {
		return Location{}, ErrInvalidLocation
	}
	return Location{value: s}, nil
}

func (l Location) Value() string { return l.value }

type Capacity struct {
	value int
}

func NewCapacity(v int) (Capacity, error) {
	if v < 1 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: v}, nil
}

func (c Capacity) Value() int { return c.value }

// Room names reach email subject headers; CR and LF must never get through.
func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}
