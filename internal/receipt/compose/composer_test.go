package compose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smallbiznis/pompabon/internal/receipt/domain"
	"github.com/stretchr/testify/assert"
)

func testProfile() StationProfile {
	return StationProfile{
		SiteCode:       "SPBU 34.17101",
		Name:           "PT. SUMBER REZEKI DESA",
		Address:        "JL. RAYA DESA NO. 1",
		FallbackHeader: "PERTAMINA",
	}
}

func testTransaction() domain.Transaction {
	return domain.Transaction{
		Date:              "21/08/2026",
		Time:              "14:05",
		Seconds:           7,
		FuelType:          domain.Pertamax,
		UnitPrice:         12200,
		TotalAmount:       122000,
		PlateNumber:       "B 1234 CD",
		OperatorName:      "Siti",
		Shift:             "1",
		PumpNumber:        "2/5",
		TransactionNumber: "4015678",
	}
}

func TestCompose_Deterministic(t *testing.T) {
	c := New(testProfile())
	tx := testTransaction()
	logo := []byte{0x1D, 'v', '0', 0, 1, 0, 1, 0, 0xFF}

	a := c.Compose(tx, logo)
	b := c.Compose(tx, logo)
	assert.True(t, bytes.Equal(a, b))
}

func TestCompose_StreamOrder(t *testing.T) {
	c := New(testProfile())
	stream := c.Compose(testTransaction(), nil)

	// initialization block first: ESC @, ESC M 0, ESC SI, ESC 3 30
	assert.Equal(t, []byte{0x1B, '@', 0x1B, 'M', 0, 0x1B, 0x0F, 0x1B, '3', 0x1E}, stream[:10])

	// top margin then centered header
	assert.Equal(t, []byte{0x0A, 0x0A, 0x0A, 0x1B, 'a', 1}, stream[10:16])

	// ends with trailing feed and full cut
	assert.Equal(t, []byte{0x0A, 0x0A, 0x1D, 'V', 1}, stream[len(stream)-5:])
}

func TestCompose_LogoBitmap(t *testing.T) {
	c := New(testProfile())
	logo := []byte{0x1D, 'v', '0', 0, 1, 0, 2, 0, 0xFF, 0x0F}

	stream := c.Compose(testTransaction(), logo)
	assert.True(t, bytes.Contains(stream, logo))
	assert.False(t, bytes.Contains(stream, []byte("PERTAMINA")))
}

func TestCompose_FallbackHeaderWithoutLogo(t *testing.T) {
	c := New(testProfile())
	stream := c.Compose(testTransaction(), nil)

	assert.True(t, bytes.Contains(stream, []byte("PERTAMINA\n")))
}

func TestCompose_SiteCodeDoubleWidth(t *testing.T) {
	c := New(testProfile())
	stream := c.Compose(testTransaction(), nil)

	wrapped := append([]byte{0x1D, '!', 0x10}, []byte("SPBU 34.17101\n")...)
	wrapped = append(wrapped, 0x1D, '!', 0x00)
	assert.True(t, bytes.Contains(stream, wrapped))
}

func TestText_BodyRows(t *testing.T) {
	c := New(testProfile())
	text := c.Text(testTransaction())
	lines := strings.Split(text, "\n")

	assert.Equal(t, "PERTAMINA", lines[0])
	assert.Equal(t, "SPBU 34.17101", lines[1])
	assert.Equal(t, "PT. SUMBER REZEKI DESA", lines[2])
	assert.Equal(t, "JL. RAYA DESA NO. 1", lines[3])

	body := lines[4:]
	assert.Len(t, body[0], 32)
	assert.True(t, strings.HasPrefix(body[0], "1 B 1234 CD"))
	assert.True(t, strings.HasSuffix(body[0], "4015678"))
	assert.Equal(t, "Waktu: 21/08/2026 14:05:07", body[1])
	assert.Equal(t, strings.Repeat("-", 32), body[2])
	assert.Equal(t, "Pulau/Pompa : 2/5", body[3])
	assert.Equal(t, "Produk      : PERTAMAX", body[4])
	assert.Equal(t, "Harga/Liter : RP. 12.200", body[5])
	assert.Equal(t, "Volume (L)  : 10.00", body[6])
	assert.Equal(t, "Total       : RP. 122.000", body[7])
	assert.Equal(t, "Operator    : SITI", body[8])
	assert.Equal(t, strings.Repeat("-", 32), body[9])
	assert.Equal(t, "CASH"+strings.Repeat(" ", 21)+"122.000", body[10])
	assert.Equal(t, strings.Repeat("-", 32), body[11])
}

func TestText_OptionalRowsOmitted(t *testing.T) {
	c := New(testProfile())
	tx := testTransaction()
	tx.PumpNumber = ""
	tx.OperatorName = ""

	text := c.Text(tx)
	assert.NotContains(t, text, "Pulau/Pompa")
	assert.NotContains(t, text, "Operator")
}

func TestText_EmptyShiftTrimsLeft(t *testing.T) {
	c := New(testProfile())
	tx := testTransaction()
	tx.Shift = ""

	lines := strings.Split(c.Text(tx), "\n")
	assert.True(t, strings.HasPrefix(lines[4], "B 1234 CD"))
}
