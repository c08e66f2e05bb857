package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-uvcprops/internal/config"
	"github.com/kevmo314/go-uvcprops/pkg/property"
)

// memDriver serves exposure and gain from memory and fails gamma writes.
type memDriver struct {
	values map[property.ID]float64
}

func newMemDriver() *memDriver {
	return &memDriver{values: map[property.ID]float64{property.Exposure: 100, property.Gain: 16}}
}

func (d *memDriver) Get(id property.ID) property.Result {
	if id == property.Gamma {
		return property.Succeeded(0)
	}
	v, ok := d.values[id]
	if !ok {
		return property.Result{}
	}
	return property.Succeeded(v)
}

func (d *memDriver) Range(id property.ID) property.Range {
	switch id {
	case property.Exposure:
		return property.Range{Outcome: property.Success, Min: 0, Max: 1000}
	case property.Gain:
		return property.Range{Outcome: property.Success, Min: 16, Max: 500}
	case property.Gamma:
		return property.Range{Outcome: property.Failure}
	}
	return property.Range{}
}

func (d *memDriver) Set(id property.ID, v float64) property.Outcome {
	if id == property.Gamma {
		return property.Failure
	}
	if _, ok := d.values[id]; !ok {
		return property.NotHandled
	}
	d.values[id] = v
	return property.Success
}

func (d *memDriver) FrameFixup() int { return 2 }

func TestRunGet(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(newMemDriver(), []string{"get", "Exposure"}, &out))
	assert.Equal(t, "100\n", out.String())
}

func TestRunGetNotHandled(t *testing.T) {
	var out bytes.Buffer
	err := run(newMemDriver(), []string{"get", "leds"}, &out)
	require.Error(t, err)
	assert.Equal(t, "not handled\n", out.String())
}

func TestRunRange(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(newMemDriver(), []string{"range", "gain"}, &out))
	assert.Equal(t, "[16, 500]\n", out.String())

	out.Reset()
	require.NoError(t, run(newMemDriver(), []string{"range", "gamma"}, &out))
	assert.Equal(t, "unsupported\n", out.String())
}

func TestRunSet(t *testing.T) {
	drv := newMemDriver()
	var out bytes.Buffer
	require.NoError(t, run(drv, []string{"set", "gain", "64"}, &out))
	assert.Equal(t, "success\n", out.String())
	assert.Equal(t, 64.0, drv.values[property.Gain])

	out.Reset()
	require.Error(t, run(drv, []string{"set", "gamma", "1"}, &out))
	assert.Equal(t, "failure\n", out.String())
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(newMemDriver(), []string{"list"}, &out))
	assert.Contains(t, out.String(), "exposure  100  [0, 1000]")
	assert.Contains(t, out.String(), "gamma     0  unsupported")
	assert.Contains(t, out.String(), "frame fixup: 2")
}

func TestRunInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"frobnicate"},
		{"get"},
		{"set", "gain"},
		{"list", "extra"},
	} {
		assert.ErrorIs(t, run(newMemDriver(), args, io.Discard), errUsage, "%v", args)
	}

	assert.ErrorIs(t, run(newMemDriver(), []string{"get", "zoom"}, io.Discard), property.ErrUnknownProperty)
	assert.Error(t, run(newMemDriver(), []string{"set", "gain", "loud"}, io.Discard))
}

func TestApplyPresets(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	drv := newMemDriver()

	applyPresets(drv, []config.Preset{
		{Property: "exposure", Value: 500},
		{Property: "gamma", Value: 1},
		{Property: "zoom", Value: 1},
	}, logger)

	assert.Equal(t, 500.0, drv.values[property.Exposure])
	assert.Contains(t, logs.String(), "preset applied")
	assert.Contains(t, logs.String(), "preset not applied")
	assert.Contains(t, logs.String(), "skipping preset")
}

func TestPrintDevices(t *testing.T) {
	reg := property.NewRegistry()
	supported := property.DeviceID{Vendor: 0x2936, Product: 0x1202}
	require.NoError(t, reg.Register(supported, func(property.Device) property.Driver { return newMemDriver() }))

	var out bytes.Buffer
	printDevices(&out, reg, []attachedDevice{
		{Path: "/dev/bus/usb/001/004", ID: supported},
		{Path: "/dev/bus/usb/001/005", ID: property.DeviceID{Vendor: 0x046d, Product: 0x0825}},
	})
	assert.Equal(t,
		"2936:1202  supported  /dev/bus/usb/001/004\n046d:0825  -  /dev/bus/usb/001/005\n",
		out.String())

	out.Reset()
	printDevices(&out, reg, nil)
	assert.Equal(t, "no usb devices found\n", out.String())
}
