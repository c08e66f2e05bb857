// Package rigel implements the property driver for the Rigel stereo IR camera.
//
// Exposure and the IR LEDs are driven through the vendor extension unit, gain
// through the standard processing unit. Gamma and HDR have no hardware and are
// pinned at zero.
package rigel

import (
	"encoding/binary"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kevmo314/go-uvcprops/pkg/descriptors"
	"github.com/kevmo314/go-uvcprops/pkg/property"
)

var DeviceID = property.DeviceID{Vendor: 0x2936, Product: 0x1202}

// GUID of the vendor extension unit.
var GUID = uuid.MustParse("2ccb0bda-6331-4fdb-850e-79054dbd5671")

// Extension unit control selectors.
const (
	ControlStrobe       uint8 = 0x01
	ControlEmbeddedLine uint8 = 0x02
	ControlLEDCharge    uint8 = 0x07
	ControlExposure     uint8 = 0x0b
)

const (
	frameFixup = 2

	exposureMin = 10
	exposureMax = 0xffff
	// Advertised exposure ceiling. Writes are clamped to exposureMax, not this.
	exposureRangeMax = 1000

	gainRangeMin = 16
	gainRangeMax = 500
)

// Health reports whether the extension unit came up when the session was created.
type Health int

const (
	Ready Health = iota
	// Degraded sessions keep serving processing unit properties; extension unit
	// properties fail per call.
	Degraded
)

func (h Health) String() string {
	if h == Degraded {
		return "degraded"
	}
	return "ready"
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session drives the properties of one device. It is not safe for concurrent use.
type Session struct {
	dev     property.Device
	xu      property.ExtensionUnit
	logger  *slog.Logger
	initErr error

	// The device cannot report the LED state, so the last commanded value is kept.
	leds float64
}

// New binds a session to dev and initializes the extension unit. A failed
// initialization does not fail construction; see Health and Err.
func New(dev property.Device, opts ...Option) *Session {
	s := &Session{
		dev: dev,
		xu: property.ExtensionUnit{
			Subdevice: 0,
			Unit:      1,
			Node:      4,
			GUID:      GUID,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := dev.InitXU(s.xu); err != nil {
		s.initErr = err
		s.logger.Warn("extension unit init failed", "xu", s.xu, "error", err)
	}
	return s
}

// Register adds the Rigel factory to reg.
func Register(reg *property.Registry, opts ...Option) error {
	return reg.Register(DeviceID, func(dev property.Device) property.Driver {
		return New(dev, opts...)
	})
}

func (s *Session) Health() Health {
	if s.initErr != nil {
		return Degraded
	}
	return Ready
}

// Err returns the extension unit initialization error, if any.
func (s *Session) Err() error {
	return s.initErr
}

func (s *Session) ExtensionUnit() property.ExtensionUnit {
	return s.xu
}

func (s *Session) FrameFixup() int {
	return frameFixup
}

func (s *Session) Get(id property.ID) property.Result {
	switch id {
	case property.Exposure:
		buf := make([]byte, 2)
		if err := s.dev.GetXU(s.xu, ControlExposure, buf); err != nil {
			return s.fail("get exposure", err)
		}
		return property.Succeeded(float64(binary.LittleEndian.Uint16(buf)))
	case property.Gain:
		v, err := s.dev.GetPU(descriptors.ProcessingUnitGainControl)
		if err != nil {
			return s.fail("get gain", err)
		}
		return property.Succeeded(float64(v))
	case property.Gamma, property.HDR:
		return property.Succeeded(0)
	case property.LEDs:
		return property.Succeeded(s.leds)
	}
	return property.Result{Outcome: property.NotHandled}
}

func (s *Session) Range(id property.ID) property.Range {
	switch id {
	case property.Exposure:
		return property.Range{Outcome: property.Success, Min: 0, Max: exposureRangeMax}
	case property.Gain:
		return property.Range{Outcome: property.Success, Min: gainRangeMin, Max: gainRangeMax}
	case property.Gamma, property.HDR:
		return property.Range{Outcome: property.Failure}
	case property.LEDs:
		return property.Range{Outcome: property.Success, Min: 0, Max: 1}
	}
	return property.Range{Outcome: property.NotHandled}
}

func (s *Session) Set(id property.ID, v float64) property.Outcome {
	switch id {
	case property.Exposure:
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(property.Saturate(v, exposureMin, exposureMax)))
		if err := s.dev.SetXU(s.xu, ControlExposure, buf); err != nil {
			return s.fail("set exposure", err).Outcome
		}
		return property.Success
	case property.Gain:
		code := EncodeGain(v)
		s.logger.Debug("set gain", "value", v, "code", code)
		if err := s.dev.SetPU(descriptors.ProcessingUnitGainControl, code); err != nil {
			return s.fail("set gain", err).Outcome
		}
		return property.Success
	case property.Gamma, property.HDR:
		// Only the fixed value is accepted.
		if v != 0 {
			return property.Failure
		}
		return property.Success
	case property.LEDs:
		return s.setLEDs(v)
	}
	return property.NotHandled
}

// setLEDs writes the strobe and the charge register. Both writes are always
// issued; the cached state only moves when both succeed.
func (s *Session) setLEDs(v float64) property.Outcome {
	if v == s.leds {
		return property.Success
	}
	flag := property.Flag(v)

	strobe := []byte{byte(flag)}
	strobeErr := s.dev.SetXU(s.xu, ControlStrobe, strobe)
	if strobeErr != nil {
		s.fail("set led strobe", strobeErr)
	}

	charge := make([]byte, 4)
	binary.LittleEndian.PutUint32(charge, uint32(flag))
	chargeErr := s.dev.SetXU(s.xu, ControlLEDCharge, charge)
	if chargeErr != nil {
		s.fail("set led charge", chargeErr)
	}

	if strobeErr != nil || chargeErr != nil {
		return property.Failure
	}
	s.leds = v
	return property.Success
}

func (s *Session) fail(op string, err error) property.Result {
	s.logger.Debug(op+" failed", "error", err)
	return property.Result{Outcome: property.Failure}
}
