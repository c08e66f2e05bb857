package uvc

import (
	"fmt"
	"sync/atomic"
	"time"

	usb "github.com/kevmo314/go-usb"
	"github.com/kevmo314/go-uvcprops/pkg/descriptors"
	"github.com/kevmo314/go-uvcprops/pkg/property"
)

const controlTimeout = time.Second

// controlTransferer is the part of *usb.DeviceHandle used to talk to units.
type controlTransferer interface {
	ControlTransfer(requestType, request uint8, value, index uint16, data []byte, timeout time.Duration) (int, error)
}

type UVCDevice struct {
	handle   *usb.DeviceHandle
	transfer controlTransferer
	closed   *atomic.Bool
	id       property.DeviceID

	// ControlInterfaces are indexed by subdevice.
	ControlInterfaces []*ControlInterface

	xus map[property.ExtensionUnit]*ExtensionUnit
}

// NewUVCDevice wraps an open usbfs file descriptor and scans its video control
// interfaces for processing and extension units.
func NewUVCDevice(fd uintptr) (*UVCDevice, error) {
	handle, err := usb.WrapSysDevice(int(fd))
	if err != nil {
		return nil, fmt.Errorf("wrap sys device: %w", err)
	}
	desc, err := handle.GetDeviceDescriptor()
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("get device descriptor: %w", err)
	}
	config, err := handle.GetActiveConfigDescriptor()
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("get active config descriptor: %w", err)
	}

	id := property.DeviceID{Vendor: uint16(desc.VendorID), Product: uint16(desc.ProductID)}
	dev := newUVCDevice(handle, id)
	dev.handle = handle

	for _, iface := range config.Interfaces {
		if len(iface.AltSettings) == 0 {
			continue
		}
		alt := iface.AltSettings[0]
		if !isVideoControl(id, descriptors.ClassCode(alt.InterfaceClass), descriptors.SubclassCode(alt.InterfaceSubClass)) {
			continue
		}
		ci, err := parseControlInterface(dev.transfer, uint8(alt.InterfaceNumber), alt.Extra)
		if err != nil {
			handle.Close()
			return nil, fmt.Errorf("interface %d: %w", alt.InterfaceNumber, err)
		}
		dev.ControlInterfaces = append(dev.ControlInterfaces, ci)
	}
	if len(dev.ControlInterfaces) == 0 {
		handle.Close()
		return nil, ErrControlInterfaceNotFound
	}
	return dev, nil
}

func newUVCDevice(transfer controlTransferer, id property.DeviceID) *UVCDevice {
	return &UVCDevice{
		transfer: transfer,
		closed:   &atomic.Bool{},
		id:       id,
		xus:      make(map[property.ExtensionUnit]*ExtensionUnit),
	}
}

// isTISCamera reports The Imaging Source cameras, which expose their video
// control interface under the vendor specific class.
func isTISCamera(id property.DeviceID) bool {
	return id.Vendor == 0x199e && (id.Product == 0x8101 || id.Product == 0x8102)
}

func isVideoControl(id property.DeviceID, class descriptors.ClassCode, subclass descriptors.SubclassCode) bool {
	if subclass != descriptors.SubclassCodeVideoControl {
		return false
	}
	if isTISCamera(id) {
		return class == descriptors.ClassCodeVendorSpecific
	}
	return class == descriptors.ClassCodeVideo
}

func (d *UVCDevice) ID() property.DeviceID {
	return d.id
}

func (d *UVCDevice) Close() error {
	if d.closed.Swap(true) || d.handle == nil {
		return nil
	}
	return d.handle.Close()
}

type ControlInterface struct {
	InterfaceNumber uint8
	Header          *descriptors.HeaderDescriptor
	ProcessingUnits []*ProcessingUnit
	ExtensionUnits  []*ExtensionUnit
	Descriptors     []descriptors.ControlInterface
}

func parseControlInterface(transfer controlTransferer, ifnum uint8, vcbuf []byte) (*ControlInterface, error) {
	ci := &ControlInterface{InterfaceNumber: ifnum}
	for i := 0; i < len(vcbuf); {
		n := int(vcbuf[i])
		if n < 2 || i+n > len(vcbuf) {
			return nil, fmt.Errorf("descriptor at offset %d: %w", i, descriptors.ErrInvalidDescriptor)
		}
		block := vcbuf[i : i+n]
		i += n
		if descriptors.ClassSpecificDescriptorType(block[1]) != descriptors.ClassSpecificDescriptorTypeInterface {
			// ignore blocks that are not CS_INTERFACE 0x24
			continue
		}
		desc, err := descriptors.UnmarshalControlInterface(block)
		if err != nil {
			return nil, err
		}
		ci.Descriptors = append(ci.Descriptors, desc)
		switch desc := desc.(type) {
		case *descriptors.HeaderDescriptor:
			ci.Header = desc
		case *descriptors.ProcessingUnitDescriptor:
			ci.ProcessingUnits = append(ci.ProcessingUnits, &ProcessingUnit{
				transfer:        transfer,
				interfaceNumber: ifnum,
				UnitDescriptor:  desc,
			})
		case *descriptors.ExtensionUnitDescriptor:
			ci.ExtensionUnits = append(ci.ExtensionUnits, &ExtensionUnit{
				transfer:        transfer,
				interfaceNumber: ifnum,
				UnitDescriptor:  desc,
			})
		}
	}
	return ci, nil
}
