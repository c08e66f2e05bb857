package descriptors

import (
	"encoding"
	"encoding/binary"
	"io"
)

type ProcessingUnitControlSelector int

const (
	ProcessingUnitControlSelectorUndefined           ProcessingUnitControlSelector = 0x00
	ProcessingUnitBacklightCompensationControl       ProcessingUnitControlSelector = 0x01
	ProcessingUnitBrightnessControl                  ProcessingUnitControlSelector = 0x02
	ProcessingUnitContrastControl                    ProcessingUnitControlSelector = 0x03
	ProcessingUnitGainControl                        ProcessingUnitControlSelector = 0x04
	ProcessingUnitPowerLineFrequencyControl          ProcessingUnitControlSelector = 0x05
	ProcessingUnitHueControl                         ProcessingUnitControlSelector = 0x06
	ProcessingUnitSaturationControl                  ProcessingUnitControlSelector = 0x07
	ProcessingUnitSharpnessControl                   ProcessingUnitControlSelector = 0x08
	ProcessingUnitGammaControl                       ProcessingUnitControlSelector = 0x09
	ProcessingUnitWhiteBalanceTemperatureControl     ProcessingUnitControlSelector = 0x0A
	ProcessingUnitWhiteBalanceTemperatureAutoControl ProcessingUnitControlSelector = 0x0B
	ProcessingUnitWhiteBalanceComponentControl       ProcessingUnitControlSelector = 0x0C
	ProcessingUnitWhiteBalanceComponentAutoControl   ProcessingUnitControlSelector = 0x0D
	ProcessingUnitDigitalMultiplierControl           ProcessingUnitControlSelector = 0x0E
	ProcessingUnitDigitalMultiplierLimitControl      ProcessingUnitControlSelector = 0x0F
	ProcessingUnitHueAutoControl                     ProcessingUnitControlSelector = 0x10
	ProcessingUnitAnalogVideoStandardControl         ProcessingUnitControlSelector = 0x11
	ProcessingUnitAnalogVideoLockStatusControl       ProcessingUnitControlSelector = 0x12
	ProcessingUnitContrastAutoControl                ProcessingUnitControlSelector = 0x13
)

type ProcessingUnitControlDescriptor interface {
	Value() ProcessingUnitControlSelector
	FeatureBit() int //Indicates the position of the control on the controls bitmap
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// IntegerControl is a processing unit control that carries a single integer.
// Property drivers read and write these through a widened int32.
type IntegerControl interface {
	ProcessingUnitControlDescriptor
	MarshalSize() int
	Int32() int32
	SetInt32(v int32)
}

// NewProcessingUnitControl returns an empty control for the selector, or
// ErrUnknownControl if the selector does not carry a single integer value.
func NewProcessingUnitControl(selector ProcessingUnitControlSelector) (IntegerControl, error) {
	switch selector {
	case ProcessingUnitBacklightCompensationControl:
		return &BacklightCompensationControl{}, nil
	case ProcessingUnitBrightnessControl:
		return &BrightnessControl{}, nil
	case ProcessingUnitContrastControl:
		return &ContrastControl{}, nil
	case ProcessingUnitGainControl:
		return &GainControl{}, nil
	case ProcessingUnitHueControl:
		return &HueControl{}, nil
	case ProcessingUnitSaturationControl:
		return &SaturationControl{}, nil
	case ProcessingUnitSharpnessControl:
		return &SharpnessControl{}, nil
	case ProcessingUnitGammaControl:
		return &GammaControl{}, nil
	case ProcessingUnitWhiteBalanceTemperatureControl:
		return &WhiteBalanceTemperatureControl{}, nil
	}
	return nil, ErrUnknownControl
}

// unsigned16 and signed16 hold the two wire layouts used by the integer controls.
type unsigned16 uint16

func (u *unsigned16) MarshalSize() int { return 2 }
func (u *unsigned16) Int32() int32     { return int32(*u) }
func (u *unsigned16) SetInt32(v int32) { *u = unsigned16(v) }

func (u *unsigned16) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(*u))
	return buf, nil
}

func (u *unsigned16) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	*u = unsigned16(binary.LittleEndian.Uint16(buf))
	return nil
}

type signed16 int16

func (s *signed16) MarshalSize() int { return 2 }
func (s *signed16) Int32() int32     { return int32(*s) }
func (s *signed16) SetInt32(v int32) { *s = signed16(v) }

func (s *signed16) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(*s))
	return buf, nil
}

func (s *signed16) UnmarshalBinary(buf []byte) error {
	if len(buf) < 2 {
		return io.ErrShortBuffer
	}
	*s = signed16(binary.LittleEndian.Uint16(buf))
	return nil
}

// Control Request for Brightness as defined in UVC spec 1.5, 4.2.2.3.2
type BrightnessControl struct{ signed16 }

func (bc *BrightnessControl) FeatureBit() int                      { return 0 }
func (bc *BrightnessControl) Value() ProcessingUnitControlSelector { return ProcessingUnitBrightnessControl }

// Control Request for Contrast as defined in UVC spec 1.5, 4.2.2.3.3
type ContrastControl struct{ unsigned16 }

func (cc *ContrastControl) FeatureBit() int                      { return 1 }
func (cc *ContrastControl) Value() ProcessingUnitControlSelector { return ProcessingUnitContrastControl }

// Control Request for Hue as defined in UVC spec 1.5, 4.2.2.3.9
type HueControl struct{ signed16 }

func (hc *HueControl) FeatureBit() int                      { return 2 }
func (hc *HueControl) Value() ProcessingUnitControlSelector { return ProcessingUnitHueControl }

// Control Request for Saturation as defined in UVC spec 1.5, 4.2.2.3.11
type SaturationControl struct{ unsigned16 }

func (sc *SaturationControl) FeatureBit() int                      { return 3 }
func (sc *SaturationControl) Value() ProcessingUnitControlSelector { return ProcessingUnitSaturationControl }

// Control Request for Sharpness as defined in UVC spec 1.5, 4.2.2.3.12
type SharpnessControl struct{ unsigned16 }

func (sc *SharpnessControl) FeatureBit() int                      { return 4 }
func (sc *SharpnessControl) Value() ProcessingUnitControlSelector { return ProcessingUnitSharpnessControl }

// Control Request for Gamma as defined in UVC spec 1.5, 4.2.2.3.7
type GammaControl struct{ unsigned16 }

func (gc *GammaControl) FeatureBit() int                      { return 5 }
func (gc *GammaControl) Value() ProcessingUnitControlSelector { return ProcessingUnitGammaControl }

// Control Request for White Balance Temperature as defined in UVC spec 1.5, 4.2.2.3.13
type WhiteBalanceTemperatureControl struct{ unsigned16 }

func (wc *WhiteBalanceTemperatureControl) FeatureBit() int { return 6 }
func (wc *WhiteBalanceTemperatureControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitWhiteBalanceTemperatureControl
}

// Control Request for Backlight Compensation as defined in UVC spec 1.5, 4.2.2.3.1
type BacklightCompensationControl struct{ unsigned16 }

func (bc *BacklightCompensationControl) FeatureBit() int { return 8 }
func (bc *BacklightCompensationControl) Value() ProcessingUnitControlSelector {
	return ProcessingUnitBacklightCompensationControl
}

// Control Request for Gain as defined in UVC spec 1.5, 4.2.2.3.6
type GainControl struct{ unsigned16 }

func (gc *GainControl) FeatureBit() int                      { return 9 }
func (gc *GainControl) Value() ProcessingUnitControlSelector { return ProcessingUnitGainControl }
