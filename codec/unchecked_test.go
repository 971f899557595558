package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codec-generator/codec"
)

func TestUncheckedRoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	codec.WriteUint16(buf, 0, 0x0102, codec.BE)
	codec.WriteInt32(buf, 2, -9, codec.LE)
	codec.WriteFloat64(buf, 6, 3.5, codec.BE)
	codec.WriteBool(buf, 14, true, codec.LE)
	codec.WriteInt8(buf, 15, -1, codec.LE)

	assert.Equal(t, []byte{0x01, 0x02}, buf[:2])
	assert.Equal(t, uint16(0x0102), codec.ReadUint16(buf, 0, codec.BE))
	assert.Equal(t, int32(-9), codec.ReadInt32(buf, 2, codec.LE))
	assert.InDelta(t, 3.5, codec.ReadFloat64(buf, 6, codec.BE), 0)
	assert.True(t, codec.ReadBool(buf, 14, codec.LE))
	assert.Equal(t, int8(-1), codec.ReadInt8(buf, 15, codec.LE))
	assert.Equal(t, uint8(0xFF), codec.ReadUint8(buf, 15, codec.LE))
}

func TestUnchecked_PanicsOnShortBuffer(t *testing.T) {
	buf := make([]byte, 3)

	assert.Panics(t, func() { codec.ReadUint32(buf, 0, codec.LE) })
	assert.Panics(t, func() { codec.WriteUint64(buf, 0, 1, codec.BE) })
	assert.Panics(t, func() { codec.ReadUint8(buf, 3, codec.LE) })
	assert.NotPanics(t, func() { codec.WriteUint16(buf, 1, 1, codec.LE) })
}

func TestEndian(t *testing.T) {
	assert.Equal(t, codec.Big, codec.Network)
	assert.True(t, codec.LE.IsLittle())
	assert.False(t, codec.BE.IsLittle())
	assert.Equal(t, "little", codec.Little.String())
	assert.Equal(t, "big", codec.Big.String())
	assert.Equal(t, "unknown", codec.Endian(9).String())
	assert.Contains(t, []codec.Endian{codec.Little, codec.Big}, codec.Native)
}
