package property

import (
	"fmt"
	"strings"
)

// ID identifies a camera property. The standard ids share their numbering
// with OpenCV's CAP_PROP_* constants.
type ID int

const (
	Gain     ID = 14
	Exposure ID = 15
	Gamma    ID = 22

	// Vendor properties.
	HDR  ID = 1001
	LEDs ID = 1002
)

var idNames = map[ID]string{
	Gain:     "gain",
	Exposure: "exposure",
	Gamma:    "gamma",
	HDR:      "hdr",
	LEDs:     "leds",
}

// IDs lists the known properties in a stable order.
func IDs() []ID {
	return []ID{Exposure, Gain, Gamma, HDR, LEDs}
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("property(%d)", int(id))
}

// ParseID resolves a property name, case-insensitively.
func ParseID(name string) (ID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range idNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}
