package shape

import (
	"fmt"
	"strings"
)

// Kind selects a sampling law
type Kind uint8

const (
	Sphere Kind = iota
	Cube
	Heart
	Flower
)

// Kinds lists every shape in selector order
var Kinds = []Kind{Sphere, Cube, Heart, Flower}

var kindNames = [...]string{
	Sphere: "Sphere",
	Cube:   "Cube",
	Heart:  "Heart",
	Flower: "Flower",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Parse resolves a case-insensitive shape name
func Parse(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Kind(i), nil
		}
	}
	return Sphere, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText lets shapes round-trip through config files
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
