package uvc

import (
	"fmt"

	"github.com/kevmo314/go-uvcprops/pkg/descriptors"
	"github.com/kevmo314/go-uvcprops/pkg/requests"
)

// ExtensionUnit is a vendor unit. Its controls are opaque byte strings whose
// length is fixed by the vendor protocol.
type ExtensionUnit struct {
	transfer        controlTransferer
	interfaceNumber uint8
	UnitDescriptor  *descriptors.ExtensionUnitDescriptor
}

func (xu *ExtensionUnit) Get(control uint8, data []byte) error {
	if err := controlRequest(xu.transfer, requests.RequestTypeVideoInterfaceGetRequest, requests.RequestCodeGetCur,
		control, xu.UnitDescriptor.UnitID, xu.interfaceNumber, data); err != nil {
		return fmt.Errorf("extension unit %d get %#02x: %w", xu.UnitDescriptor.UnitID, control, err)
	}
	return nil
}

func (xu *ExtensionUnit) Set(control uint8, data []byte) error {
	if err := controlRequest(xu.transfer, requests.RequestTypeVideoInterfaceSetRequest, requests.RequestCodeSetCur,
		control, xu.UnitDescriptor.UnitID, xu.interfaceNumber, data); err != nil {
		return fmt.Errorf("extension unit %d set %#02x: %w", xu.UnitDescriptor.UnitID, control, err)
	}
	return nil
}
