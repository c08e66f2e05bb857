package property

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kevmo314/go-uvcprops/pkg/descriptors"
)

// DeviceID is a USB vendor and product id pair.
type DeviceID struct {
	Vendor  uint16
	Product uint16
}

func (d DeviceID) String() string {
	return fmt.Sprintf("%04x:%04x", d.Vendor, d.Product)
}

// ExtensionUnit addresses a vendor extension unit. Subdevice selects the video
// control interface, Unit is the bUnitID of the unit and Node is the topology
// node used by platforms that address units through a kernel streaming graph.
type ExtensionUnit struct {
	Subdevice uint8
	Unit      uint8
	Node      uint8
	GUID      uuid.UUID
}

func (xu ExtensionUnit) String() string {
	return fmt.Sprintf("xu{subdevice=%d unit=%d node=%d guid=%s}", xu.Subdevice, xu.Unit, xu.Node, xu.GUID)
}

// Device is the control channel a driver talks to. Calls are synchronous; a nil
// error means the transfer completed.
type Device interface {
	InitXU(xu ExtensionUnit) error
	GetXU(xu ExtensionUnit, control uint8, data []byte) error
	SetXU(xu ExtensionUnit, control uint8, data []byte) error
	GetPU(selector descriptors.ProcessingUnitControlSelector) (int32, error)
	SetPU(selector descriptors.ProcessingUnitControlSelector, value int32) error
}
