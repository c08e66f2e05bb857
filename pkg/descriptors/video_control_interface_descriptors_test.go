package descriptors

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGUID = uuid.MustParse("2ccb0bda-6331-4fdb-850e-79054dbd5671")

func extensionUnitBlock(unitID uint8, guid uuid.UUID, sources []uint8, controls []byte) []byte {
	buf := []byte{0, 0x24, 0x06, unitID}
	wire := make([]byte, 16)
	MarshalGUID(wire, guid)
	buf = append(buf, wire...)
	buf = append(buf, 8, uint8(len(sources)))
	buf = append(buf, sources...)
	buf = append(buf, uint8(len(controls)))
	buf = append(buf, controls...)
	buf = append(buf, 0)
	buf[0] = uint8(len(buf))
	return buf
}

func TestExtensionUnitDescriptor_UnmarshalBinary(t *testing.T) {
	block := extensionUnitBlock(1, testGUID, []uint8{2}, []byte{0xff, 0x03})
	require.Len(t, block, 27)

	// Data1 is little-endian on the wire.
	assert.Equal(t, []byte{0xda, 0x0b, 0xcb, 0x2c}, block[4:8])

	desc, err := UnmarshalControlInterface(block)
	require.NoError(t, err)
	eud, ok := desc.(*ExtensionUnitDescriptor)
	require.True(t, ok, "got %T", desc)

	assert.Equal(t, uint8(1), eud.UnitID)
	assert.Equal(t, testGUID, eud.GUIDExtensionCode)
	assert.Equal(t, uint8(8), eud.NumControls)
	assert.Equal(t, []uint8{2}, eud.SourceIDs)
	assert.Equal(t, []byte{0xff, 0x03}, eud.ControlsBitmask)
}

func TestExtensionUnitDescriptor_ShortBuffer(t *testing.T) {
	block := extensionUnitBlock(1, testGUID, []uint8{2}, []byte{0xff})
	err := (&ExtensionUnitDescriptor{}).UnmarshalBinary(block[:20])
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}

func TestProcessingUnitDescriptor_UnmarshalBinary(t *testing.T) {
	// UVC 1.1 layout with a two byte bitmap: brightness (D0) and gain (D9).
	block := []byte{11, 0x24, 0x05, 3, 1, 0x00, 0x40, 2, 0x01, 0x02, 0}

	desc, err := UnmarshalControlInterface(block)
	require.NoError(t, err)
	pud, ok := desc.(*ProcessingUnitDescriptor)
	require.True(t, ok, "got %T", desc)

	assert.Equal(t, uint8(3), pud.UnitID)
	assert.Equal(t, uint8(1), pud.SourceID)
	assert.Equal(t, uint16(0x4000), pud.MaxMultiplier)
	assert.True(t, pud.IsControlSupported((&BrightnessControl{}).FeatureBit()))
	assert.True(t, pud.IsControlSupported((&GainControl{}).FeatureBit()))
	assert.False(t, pud.IsControlSupported((&ContrastControl{}).FeatureBit()))
	assert.False(t, pud.IsControlSupported(42))
	assert.False(t, pud.IsControlSupported(-1))
}

func TestProcessingUnitDescriptor_WrongSubtype(t *testing.T) {
	block := []byte{11, 0x24, 0x06, 3, 1, 0x00, 0x40, 2, 0x01, 0x02, 0}
	err := (&ProcessingUnitDescriptor{}).UnmarshalBinary(block)
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestHeaderDescriptor_UnmarshalBinary(t *testing.T) {
	block := []byte{13, 0x24, 0x01, 0x10, 0x01, 0x40, 0x00, 0x00, 0x6c, 0xdc, 0x02, 1, 1}

	desc, err := UnmarshalControlInterface(block)
	require.NoError(t, err)
	hd := desc.(*HeaderDescriptor)
	assert.Equal(t, uint16(0x0110), hd.UVC)
	assert.Equal(t, uint32(48000000), hd.ClockFrequency)
	assert.Equal(t, []uint8{1}, hd.VideoStreamingInterfaceIndexes)
}

func TestUnmarshalControlInterface_SelectorUnit(t *testing.T) {
	block := []byte{7, 0x24, 0x04, 5, 1, 2, 0}

	desc, err := UnmarshalControlInterface(block)
	require.NoError(t, err)
	gud, ok := desc.(*GenericUnitDescriptor)
	require.True(t, ok, "got %T", desc)
	assert.Equal(t, VideoControlInterfaceDescriptorSubtypeSelectorUnit, gud.Subtype)
	assert.Equal(t, uint8(5), gud.UnitID)
}

func TestUnmarshalControlInterface_Truncated(t *testing.T) {
	_, err := UnmarshalControlInterface([]byte{9, 0x24})
	assert.ErrorIs(t, err, io.ErrShortBuffer)
}
