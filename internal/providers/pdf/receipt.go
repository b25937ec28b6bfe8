package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ReceiptData carries one recorded sale plus the station literals. All
// currency values are pre-rendered in the on-screen preview format
// ("Rp122.000"), not the thermal bon format.
type ReceiptData struct {
	StationSiteCode string
	StationName     string
	StationAddress  string

	TransactionNumber string
	PrintedAt         string

	FuelType     string
	UnitPrice    string
	VolumeLiters string
	Total        string

	PlateNumber  string
	OperatorName string
	Shift        string
	PumpNumber   string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(15,
		text.NewCol(12, "Struk Pembelian BBM", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(25,
		col.New(6).Add(
			text.New(data.StationSiteCode, props.Text{Style: fontstyle.Bold}),
			text.New(data.StationName, props.Text{Top: 5}),
			text.New(data.StationAddress, props.Text{Top: 9}),
		),
		col.New(6).Add(
			text.New("No. Transaksi: "+data.TransactionNumber, props.Text{Top: 0}),
			text.New("Waktu: "+data.PrintedAt, props.Text{Top: 4}),
			text.New("Shift: "+data.Shift, props.Text{Top: 8}),
			text.New("Pulau/Pompa: "+data.PumpNumber, props.Text{Top: 12}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Produk", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Harga/L", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Volume", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	m.AddRow(12,
		text.NewCol(6, data.FuelType, props.Text{Size: 9}),
		text.NewCol(2, data.UnitPrice, props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, data.VolumeLiters, props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, data.Total, props.Text{Size: 9, Align: align.Right}),
	)

	m.AddRow(15,
		text.NewCol(12, data.Total+" dibayar tunai", props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Top:   5,
		}),
	)

	meta := "Operator: " + data.OperatorName
	if data.PlateNumber != "" {
		meta += "  /  No. Polisi: " + data.PlateNumber
	}
	m.AddRow(10,
		text.NewCol(12, meta, props.Text{Size: 9}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
