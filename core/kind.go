package core

import "fmt"

// Kind enumerates the part variants a caller may request. The zero Kind is
// not a valid kind, so an unset field never silently becomes a hull.
type Kind int

const (
	// KindHull is a protective hull segment.
	KindHull Kind = iota + 1
	// KindCargo is a cargo bay.
	KindCargo
	// KindCockpit is a cockpit.
	KindCockpit
	// KindSolarPanels is an array of solar panels.
	KindSolarPanels
	// KindLivingQuarters is a crew living quarters module.
	KindLivingQuarters
)

var kindNames = map[Kind]string{
	KindHull:           "hull",
	KindCargo:          "cargo",
	KindCockpit:        "cockpit",
	KindSolarPanels:    "solar_panels",
	KindLivingQuarters: "living_quarters",
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindHull, KindCargo, KindCockpit, KindSolarPanels, KindLivingQuarters}
}

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown part kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind resolves a kind from its name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown part kind %q", name)
}
