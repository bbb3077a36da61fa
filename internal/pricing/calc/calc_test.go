package calc

import (
	"testing"

	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestLabellingTiers(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		pieces int
		want   string
	}{
		{0, "0"},
		{-3, "0"},
		{1, "36"},
		{50, "36"},
		{100, "36"},
		{101, "36.36"},
		{250, "90"},
	}
	for _, tc := range cases {
		got, err := Compute(Line{
			QtyBasis:    templatedomain.BasisPiece,
			IsLabelling: true,
			// rates must be ignored for labelling
			BuyRate:  d("99"),
			SellRate: d("99"),
		}, Cargo{Pieces: tc.pieces}, rules)
		require.NoError(t, err)
		require.True(t, got.TotalSell.Equal(d(tc.want)), "pieces=%d got=%s", tc.pieces, got.TotalSell)
		require.True(t, got.Qty.Equal(decimal.NewFromInt(int64(tc.pieces))))
		require.False(t, got.Margin.Valid)
	}
}

func TestChargeableWeightPrefersProvided(t *testing.T) {
	rules := DefaultRules()

	cargo := Cargo{WeightKg: d("80"), ChargeableWeightKg: d("120"), VolumeCbm: d("0.3")}
	require.True(t, cargo.AirfreightWeightKg(rules).Equal(d("120")))

	// derived from CBM: 0.6 cbm -> 600000 / 6000 = 100 kg, above the 80 actual
	cargo = Cargo{WeightKg: d("80"), VolumeCbm: d("0.6")}
	require.True(t, cargo.AirfreightWeightKg(rules).Equal(d("100")))

	// dimensions fallback: 100x60x60 cm -> 360000 / 6000 = 60, actual wins
	cargo = Cargo{WeightKg: d("80"), LengthCm: d("100"), WidthCm: d("60"), HeightCm: d("60")}
	require.True(t, cargo.AirfreightWeightKg(rules).Equal(d("80")))

	// nothing to derive from
	cargo = Cargo{WeightKg: d("80")}
	require.True(t, cargo.AirfreightWeightKg(rules).Equal(d("80")))
}

func TestComputeAirfreight(t *testing.T) {
	got, err := Compute(Line{
		QtyBasis: templatedomain.BasisKgChargeableMax,
		BuyRate:  d("3"),
		SellRate: d("5"),
	}, Cargo{WeightKg: d("40"), ChargeableWeightKg: d("55")}, DefaultRules())
	require.NoError(t, err)
	require.True(t, got.Qty.Equal(d("55")))
	require.True(t, got.TotalSell.Equal(d("275")))
	require.True(t, got.Margin.Valid)
	require.True(t, got.Margin.Decimal.Equal(d("110")))
}

func TestComputeBases(t *testing.T) {
	rules := DefaultRules()
	cargo := Cargo{Pieces: 12, WeightKg: d("40"), VolumeCbm: d("2.5")}

	actual, err := Compute(Line{QtyBasis: templatedomain.BasisKgActual, SellRate: d("2")}, cargo, rules)
	require.NoError(t, err)
	require.True(t, actual.Qty.Equal(d("40")))
	require.True(t, actual.TotalSell.Equal(d("80")))

	piece, err := Compute(Line{QtyBasis: templatedomain.BasisPiece, SellRate: d("2")}, cargo, rules)
	require.NoError(t, err)
	require.True(t, piece.Qty.Equal(d("12")))

	cbm, err := Compute(Line{QtyBasis: templatedomain.BasisCBM, SellRate: d("10")}, cargo, rules)
	require.NoError(t, err)
	require.True(t, cbm.TotalSell.Equal(d("25")))

	shipment, err := Compute(Line{QtyBasis: templatedomain.BasisShipment, SellRate: d("150"), BuyRate: d("100")}, cargo, rules)
	require.NoError(t, err)
	require.True(t, shipment.Qty.Equal(d("1")))
	require.True(t, shipment.TotalSell.Equal(d("150")))
	require.True(t, shipment.Margin.Decimal.Equal(d("50")))
}

func TestComputeContainerBasis(t *testing.T) {
	rules := DefaultRules()

	_, err := Compute(Line{QtyBasis: templatedomain.BasisContainer, SellRate: d("100")}, Cargo{}, rules)
	require.ErrorIs(t, err, ErrContainerQtyRequired)

	qty := 3
	got, err := Compute(Line{QtyBasis: templatedomain.BasisContainer, SellRate: d("100"), BuyRate: d("70"), ContainerQty: &qty}, Cargo{}, rules)
	require.NoError(t, err)
	require.True(t, got.Qty.Equal(d("3")))
	require.True(t, got.TotalSell.Equal(d("300")))
	require.True(t, got.Margin.Decimal.Equal(d("90")))
}

func TestNegativeMargin(t *testing.T) {
	got, err := Compute(Line{
		QtyBasis: templatedomain.BasisShipment,
		BuyRate:  d("200"),
		SellRate: d("150"),
	}, Cargo{}, DefaultRules())
	require.NoError(t, err)
	require.True(t, got.Margin.Decimal.Equal(d("-50")))
}
