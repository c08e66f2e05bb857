// Package requests holds the class-specific request constants used on the
// video control interface (UVC spec 1.5, section 4.2 and appendix A.8).
package requests

type RequestType uint8

const (
	RequestTypeVideoInterfaceSetRequest RequestType = 0b00100001
	RequestTypeVideoInterfaceGetRequest RequestType = 0b10100001
)

type RequestCode uint8

const (
	RequestCodeUndefined RequestCode = 0x00
	RequestCodeSetCur    RequestCode = 0x01
	RequestCodeGetCur    RequestCode = 0x81
	RequestCodeGetMin    RequestCode = 0x82
	RequestCodeGetMax    RequestCode = 0x83
	RequestCodeGetRes    RequestCode = 0x84
	RequestCodeGetLen    RequestCode = 0x85
	RequestCodeGetInfo   RequestCode = 0x86
	RequestCodeGetDef    RequestCode = 0x87
)

// ControlValue packs a control selector into wValue.
func ControlValue(selector uint8) uint16 {
	return uint16(selector) << 8
}

// ControlIndex packs a unit or terminal id and the interface number into wIndex.
func ControlIndex(entityID, interfaceNumber uint8) uint16 {
	return uint16(entityID)<<8 | uint16(interfaceNumber)
}
