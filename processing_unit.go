package uvc

import (
	"fmt"

	"github.com/kevmo314/go-uvcprops/pkg/descriptors"
	"github.com/kevmo314/go-uvcprops/pkg/requests"
)

var puControls = []descriptors.IntegerControl{
	&descriptors.BrightnessControl{},
	&descriptors.ContrastControl{},
	&descriptors.HueControl{},
	&descriptors.SaturationControl{},
	&descriptors.SharpnessControl{},
	&descriptors.GammaControl{},
	&descriptors.WhiteBalanceTemperatureControl{},
	&descriptors.BacklightCompensationControl{},
	&descriptors.GainControl{},
}

type ProcessingUnit struct {
	transfer        controlTransferer
	interfaceNumber uint8
	UnitDescriptor  *descriptors.ProcessingUnitDescriptor
}

// GetSupportedControls lists the integer controls advertised by the unit.
func (pu *ProcessingUnit) GetSupportedControls() []descriptors.ProcessingUnitControlSelector {
	var supported []descriptors.ProcessingUnitControlSelector
	for _, desc := range puControls {
		if pu.IsControlRequestSupported(desc) {
			supported = append(supported, desc.Value())
		}
	}
	return supported
}

func (pu *ProcessingUnit) IsControlRequestSupported(desc descriptors.ProcessingUnitControlDescriptor) bool {
	// Support devices that follow older UVC versions (PUD length 10+n vs 13). See UVC 1.1
	return pu.UnitDescriptor.IsControlSupported(desc.FeatureBit())
}

func (pu *ProcessingUnit) Get(desc descriptors.IntegerControl) error {
	buf := make([]byte, desc.MarshalSize())
	if err := controlRequest(pu.transfer, requests.RequestTypeVideoInterfaceGetRequest, requests.RequestCodeGetCur,
		uint8(desc.Value()), pu.UnitDescriptor.UnitID, pu.interfaceNumber, buf); err != nil {
		return fmt.Errorf("processing unit %d get %#02x: %w", pu.UnitDescriptor.UnitID, desc.Value(), err)
	}
	return desc.UnmarshalBinary(buf)
}

func (pu *ProcessingUnit) Set(desc descriptors.IntegerControl) error {
	buf, err := desc.MarshalBinary()
	if err != nil {
		return err
	}
	if err := controlRequest(pu.transfer, requests.RequestTypeVideoInterfaceSetRequest, requests.RequestCodeSetCur,
		uint8(desc.Value()), pu.UnitDescriptor.UnitID, pu.interfaceNumber, buf); err != nil {
		return fmt.Errorf("processing unit %d set %#02x: %w", pu.UnitDescriptor.UnitID, desc.Value(), err)
	}
	return nil
}

// controlRequest issues a class-specific request against a unit and requires the
// full buffer to be transferred.
func controlRequest(transfer controlTransferer, requestType requests.RequestType, code requests.RequestCode,
	selector, unitID, ifnum uint8, data []byte) error {
	n, err := transfer.ControlTransfer(
		uint8(requestType),
		uint8(code),
		requests.ControlValue(selector),
		requests.ControlIndex(unitID, ifnum),
		data,
		controlTimeout,
	)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortTransfer, n, len(data))
	}
	return nil
}
