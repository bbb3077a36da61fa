// Package calc computes charge quantities, sell totals and margins from
// cargo figures. It is pure: no storage, no clock, no I/O.
package calc

import (
	"errors"

	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

// ErrContainerQtyRequired is returned for a CONTAINER-based charge that is
// not attached to a container block.
var ErrContainerQtyRequired = errors.New("container_qty_required")

// Rules are the tunable pricing constants. Values come from the pricing
// config file and fall back to these defaults.
type Rules struct {
	// VolumetricDivisor converts cm3 to volumetric kg for air cargo.
	VolumetricDivisor decimal.Decimal
	// LabellingFlat is charged when 0 < pieces <= LabellingThreshold.
	LabellingFlat decimal.Decimal
	// LabellingUnitRate is charged per piece above the threshold.
	LabellingUnitRate decimal.Decimal
	LabellingThreshold decimal.Decimal
}

func DefaultRules() Rules {
	return Rules{
		VolumetricDivisor:  decimal.NewFromInt(6000),
		LabellingFlat:      decimal.NewFromInt(36),
		LabellingUnitRate:  decimal.NewFromFloat(0.36),
		LabellingThreshold: decimal.NewFromInt(100),
	}
}

// Cargo holds the shipment figures a quantity can be derived from.
type Cargo struct {
	Pieces             int
	WeightKg           decimal.Decimal
	ChargeableWeightKg decimal.Decimal
	VolumeCbm          decimal.Decimal
	LengthCm           decimal.Decimal
	WidthCm            decimal.Decimal
	HeightCm           decimal.Decimal
}

// VolumetricKg derives chargeable weight from volume. A provided positive
// chargeable weight wins; otherwise CBM, then dimensions, then zero.
func (c Cargo) VolumetricKg(r Rules) decimal.Decimal {
	if c.ChargeableWeightKg.IsPositive() {
		return c.ChargeableWeightKg
	}
	if c.VolumeCbm.IsPositive() {
		return c.VolumeCbm.Mul(decimal.NewFromInt(1_000_000)).Div(r.VolumetricDivisor)
	}
	if c.LengthCm.IsPositive() && c.WidthCm.IsPositive() && c.HeightCm.IsPositive() {
		return c.LengthCm.Mul(c.WidthCm).Mul(c.HeightCm).Div(r.VolumetricDivisor)
	}
	return decimal.Zero
}

// AirfreightWeightKg is the billable air weight: the greater of actual and
// chargeable weight.
func (c Cargo) AirfreightWeightKg(r Rules) decimal.Decimal {
	chargeable := c.VolumetricKg(r)
	if c.WeightKg.GreaterThan(chargeable) {
		return c.WeightKg
	}
	return chargeable
}

// Line is one charge to compute.
type Line struct {
	QtyBasis    templatedomain.QtyBasis
	IsLabelling bool
	BuyRate     decimal.Decimal
	SellRate    decimal.Decimal
	// ContainerQty is the container count of the owning block, nil when the
	// charge has no block.
	ContainerQty *int
}

// Result is the computed money for one charge. Margin is invalid for
// labelling charges, which have no buy side.
type Result struct {
	Qty       decimal.Decimal
	TotalSell decimal.Decimal
	Margin    decimal.NullDecimal
}

// Compute resolves the quantity for a line and returns sell total and margin.
// Labelling lines ignore both rates and follow the piece-count rule instead.
func Compute(line Line, cargo Cargo, r Rules) (Result, error) {
	if line.IsLabelling {
		return computeLabelling(cargo.Pieces, r), nil
	}

	qty, err := quantity(line, cargo, r)
	if err != nil {
		return Result{}, err
	}

	totalSell := line.SellRate.Mul(qty)
	margin := line.SellRate.Sub(line.BuyRate).Mul(qty)
	return Result{
		Qty:       qty,
		TotalSell: totalSell,
		Margin:    decimal.NullDecimal{Decimal: margin, Valid: true},
	}, nil
}

func computeLabelling(pieces int, r Rules) Result {
	p := decimal.NewFromInt(int64(pieces))

	var total decimal.Decimal
	switch {
	case pieces <= 0:
		total = decimal.Zero
	case p.LessThanOrEqual(r.LabellingThreshold):
		total = r.LabellingFlat
	default:
		total = p.Mul(r.LabellingUnitRate)
	}

	return Result{
		Qty:       p,
		TotalSell: total,
		Margin:    decimal.NullDecimal{},
	}
}

func quantity(line Line, cargo Cargo, r Rules) (decimal.Decimal, error) {
	switch line.QtyBasis {
	case templatedomain.BasisContainer:
		if line.ContainerQty == nil {
			return decimal.Zero, ErrContainerQtyRequired
		}
		return decimal.NewFromInt(int64(*line.ContainerQty)), nil
	case templatedomain.BasisKgChargeableMax:
		return cargo.AirfreightWeightKg(r), nil
	case templatedomain.BasisKgActual:
		return cargo.WeightKg, nil
	case templatedomain.BasisPiece:
		return decimal.NewFromInt(int64(cargo.Pieces)), nil
	case templatedomain.BasisCBM:
		return cargo.VolumeCbm, nil
	default:
		return decimal.NewFromInt(1), nil
	}
}
