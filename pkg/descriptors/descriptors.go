package descriptors

import "errors"

var (
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	ErrUnknownControl    = errors.New("unknown control selector")
)

// copyGUID converts between the USB wire layout of a GUID and its RFC 4122 byte
// order as described in UVC spec 1.5, section 2.9. The transform is its own inverse.
func copyGUID(dst []byte, src []byte) {
	// Data1 (4 bytes), Data2 and Data3 (2 bytes each) are little-endian on the wire.
	for i := 0; i < 4; i++ {
		dst[i] = src[3-i]
	}
	dst[4], dst[5] = src[5], src[4]
	dst[6], dst[7] = src[7], src[6]
	copy(dst[8:16], src[8:16])
}

// MarshalGUID writes guid into dst in USB wire layout.
func MarshalGUID(dst []byte, guid [16]byte) {
	copyGUID(dst, guid[:])
}
