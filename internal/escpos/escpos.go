// Package escpos builds ESC/POS command streams for 58 mm thermal printers.
package escpos

import "bytes"

// Control bytes used by the command set.
const (
	ESC byte = 0x1B
	GS  byte = 0x1D
	SI  byte = 0x0F
	LF  byte = 0x0A
)

// Columns is the number of text columns on 58 mm stock at the
// standard font with condensed pitch enabled.
const Columns = 32

// MaxRasterWidth is the printable raster width in dots at 203 dpi.
const MaxRasterWidth = 384

// Buffer accumulates an ESC/POS command stream. The zero value is ready
// to use.
type Buffer struct {
	buf bytes.Buffer
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Init resets the printer to its power-on state (ESC @).
func (b *Buffer) Init() {
	b.buf.Write([]byte{ESC, '@'})
}

// SelectStandardFont selects font A (ESC M 0).
func (b *Buffer) SelectStandardFont() {
	b.buf.Write([]byte{ESC, 'M', 0})
}

// CondensedPitch enables the condensed character pitch (ESC SI).
// Together with font A this yields 32 columns on 58 mm paper.
func (b *Buffer) CondensedPitch() {
	b.buf.Write([]byte{ESC, SI})
}

// NormalLineSpacing sets line spacing to 30/180 inch (ESC 3 30).
func (b *Buffer) NormalLineSpacing() {
	b.buf.Write([]byte{ESC, '3', 0x1E})
}

// AlignCenter switches to centered justification (ESC a 1).
func (b *Buffer) AlignCenter() {
	b.buf.Write([]byte{ESC, 'a', 1})
}

// AlignLeft switches to left justification (ESC a 0).
func (b *Buffer) AlignLeft() {
	b.buf.Write([]byte{ESC, 'a', 0})
}

// DoubleWidth toggles double character width (GS ! 0x10 / GS ! 0x00).
func (b *Buffer) DoubleWidth(on bool) {
	var n byte
	if on {
		n = 0x10
	}
	b.buf.Write([]byte{GS, '!', n})
}

// Cut performs a full paper cut (GS V 1).
func (b *Buffer) Cut() {
	b.buf.Write([]byte{GS, 'V', 1})
}

// Text appends raw text without a trailing line feed.
func (b *Buffer) Text(s string) {
	b.buf.WriteString(s)
}

// Line appends text followed by a line feed.
func (b *Buffer) Line(s string) {
	b.buf.WriteString(s)
	b.buf.WriteByte(LF)
}

// Feed appends n line feeds.
func (b *Buffer) Feed(n int) {
	for i := 0; i < n; i++ {
		b.buf.WriteByte(LF)
	}
}

// Raw appends a pre-encoded command payload, e.g. a raster bitmap block.
func (b *Buffer) Raw(p []byte) {
	b.buf.Write(p)
}

func (b *Buffer) Len() int {
	return b.buf.Len()
}

func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}
