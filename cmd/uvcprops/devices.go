package main

import (
	"fmt"
	"io"

	usb "github.com/kevmo314/go-usb"

	"github.com/kevmo314/go-uvcprops/pkg/property"
)

// attachedDevice is the part of a usb device listing the devices command prints.
type attachedDevice struct {
	Path string
	ID   property.DeviceID
}

func listAttached() ([]attachedDevice, error) {
	devices, err := usb.DeviceList()
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	out := make([]attachedDevice, 0, len(devices))
	for _, dev := range devices {
		out = append(out, attachedDevice{
			Path: dev.Path,
			ID:   property.DeviceID{Vendor: uint16(dev.Descriptor.VendorID), Product: uint16(dev.Descriptor.ProductID)},
		})
	}
	return out, nil
}

func printDevices(w io.Writer, reg *property.Registry, devices []attachedDevice) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "no usb devices found")
		return
	}
	for _, dev := range devices {
		driver := "-"
		if _, ok := reg.Lookup(dev.ID); ok {
			driver = "supported"
		}
		fmt.Fprintf(w, "%s  %s  %s\n", dev.ID, driver, dev.Path)
	}
}
