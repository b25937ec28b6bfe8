package escpos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_ControlSequences(t *testing.T) {
	buf := NewBuffer()

	buf.Init()
	assert.Equal(t, []byte{0x1B, '@'}, buf.Bytes())

	buf = NewBuffer()
	buf.SelectStandardFont()
	assert.Equal(t, []byte{0x1B, 'M', 0}, buf.Bytes())

	buf = NewBuffer()
	buf.CondensedPitch()
	assert.Equal(t, []byte{0x1B, 0x0F}, buf.Bytes())

	buf = NewBuffer()
	buf.NormalLineSpacing()
	assert.Equal(t, []byte{0x1B, '3', 0x1E}, buf.Bytes())

	buf = NewBuffer()
	buf.Cut()
	assert.Equal(t, []byte{0x1D, 'V', 1}, buf.Bytes())
}

func TestBuffer_Alignment(t *testing.T) {
	buf := NewBuffer()
	buf.AlignCenter()
	buf.AlignLeft()
	assert.Equal(t, []byte{0x1B, 'a', 1, 0x1B, 'a', 0}, buf.Bytes())
}

func TestBuffer_DoubleWidth(t *testing.T) {
	buf := NewBuffer()
	buf.DoubleWidth(true)
	buf.DoubleWidth(false)
	assert.Equal(t, []byte{0x1D, '!', 0x10, 0x1D, '!', 0x00}, buf.Bytes())
}

func TestBuffer_TextAndFeed(t *testing.T) {
	buf := NewBuffer()
	buf.Line("SPBU 34.17101")
	buf.Text("no newline")
	buf.Feed(3)

	want := append([]byte("SPBU 34.17101\nno newline"), 0x0A, 0x0A, 0x0A)
	assert.Equal(t, want, buf.Bytes())
	assert.Equal(t, len(want), buf.Len())
}

func TestBuffer_RawPassthrough(t *testing.T) {
	raw := []byte{0x1D, 'v', '0', 0, 1, 0, 1, 0, 0xFF}

	buf := NewBuffer()
	buf.Raw(raw)
	assert.True(t, bytes.Equal(raw, buf.Bytes()))
}
