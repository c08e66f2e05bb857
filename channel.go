package uvc

import (
	"fmt"

	"github.com/kevmo314/go-uvcprops/pkg/descriptors"
	"github.com/kevmo314/go-uvcprops/pkg/property"
)

var _ property.Device = (*UVCDevice)(nil)

// InitXU resolves xu against the scanned descriptors. Subdevice indexes the
// video control interfaces in configuration order.
func (d *UVCDevice) InitXU(xu property.ExtensionUnit) error {
	if d.closed.Load() {
		return ErrDeviceClosed
	}
	if int(xu.Subdevice) >= len(d.ControlInterfaces) {
		return fmt.Errorf("%s: %w", xu, ErrControlInterfaceNotFound)
	}
	for _, eu := range d.ControlInterfaces[xu.Subdevice].ExtensionUnits {
		if eu.UnitDescriptor.UnitID == xu.Unit && eu.UnitDescriptor.GUIDExtensionCode == xu.GUID {
			d.xus[xu] = eu
			return nil
		}
	}
	return fmt.Errorf("%s: %w", xu, ErrExtensionUnitNotFound)
}

func (d *UVCDevice) extensionUnit(xu property.ExtensionUnit) (*ExtensionUnit, error) {
	if d.closed.Load() {
		return nil, ErrDeviceClosed
	}
	eu, ok := d.xus[xu]
	if !ok {
		return nil, fmt.Errorf("%s: %w", xu, ErrExtensionUnitNotInitialized)
	}
	return eu, nil
}

func (d *UVCDevice) GetXU(xu property.ExtensionUnit, control uint8, data []byte) error {
	eu, err := d.extensionUnit(xu)
	if err != nil {
		return err
	}
	return eu.Get(control, data)
}

func (d *UVCDevice) SetXU(xu property.ExtensionUnit, control uint8, data []byte) error {
	eu, err := d.extensionUnit(xu)
	if err != nil {
		return err
	}
	return eu.Set(control, data)
}

// processingUnit returns the first processing unit advertising the control.
func (d *UVCDevice) processingUnit(selector descriptors.ProcessingUnitControlSelector) (*ProcessingUnit, descriptors.IntegerControl, error) {
	if d.closed.Load() {
		return nil, nil, ErrDeviceClosed
	}
	ctrl, err := descriptors.NewProcessingUnitControl(selector)
	if err != nil {
		return nil, nil, fmt.Errorf("selector %#02x: %w", selector, err)
	}
	found := false
	for _, ci := range d.ControlInterfaces {
		for _, pu := range ci.ProcessingUnits {
			found = true
			if pu.IsControlRequestSupported(ctrl) {
				return pu, ctrl, nil
			}
		}
	}
	if !found {
		return nil, nil, ErrProcessingUnitNotFound
	}
	return nil, nil, fmt.Errorf("selector %#02x: %w", selector, ErrControlNotSupported)
}

func (d *UVCDevice) GetPU(selector descriptors.ProcessingUnitControlSelector) (int32, error) {
	pu, ctrl, err := d.processingUnit(selector)
	if err != nil {
		return 0, err
	}
	if err := pu.Get(ctrl); err != nil {
		return 0, err
	}
	return ctrl.Int32(), nil
}

func (d *UVCDevice) SetPU(selector descriptors.ProcessingUnitControlSelector, value int32) error {
	pu, ctrl, err := d.processingUnit(selector)
	if err != nil {
		return err
	}
	ctrl.SetInt32(value)
	return pu.Set(ctrl)
}
