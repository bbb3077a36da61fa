package domain

import (
	"time"

	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BreakdownStatus tracks customer approval for exposing the exworks breakdown.
type BreakdownStatus string

const (
	BreakdownNone     BreakdownStatus = "NONE"
	BreakdownPending  BreakdownStatus = "PENDING"
	BreakdownApproved BreakdownStatus = "APPROVED"
)

// Quote is the shipment record priced by the pricing engine. Cargo figures
// are captured by operations before pricing starts; the pricing fields on the
// right half are owned by the pricing service.
type Quote struct {
	ID        int64                         `json:"id,string" gorm:"primaryKey"`
	Reference string                        `json:"reference" gorm:"type:text;not null;uniqueIndex"`
	Mode      templatedomain.ShipmentMode   `json:"mode" gorm:"type:text;not null"`
	Direction templatedomain.TradeDirection `json:"direction" gorm:"type:text"`

	Pieces             int             `json:"pieces" gorm:"not null;default:0"`
	WeightKg           decimal.Decimal `json:"weight_kg" gorm:"type:numeric;not null;default:0"`
	ChargeableWeightKg decimal.Decimal `json:"chargeable_weight_kg" gorm:"type:numeric;not null;default:0"`
	VolumeCbm          decimal.Decimal `json:"volume_cbm" gorm:"type:numeric;not null;default:0"`
	LengthCm           decimal.Decimal `json:"length_cm" gorm:"type:numeric;not null;default:0"`
	WidthCm            decimal.Decimal `json:"width_cm" gorm:"type:numeric;not null;default:0"`
	HeightCm           decimal.Decimal `json:"height_cm" gorm:"type:numeric;not null;default:0"`

	PricingLockedAt     *time.Time `json:"pricing_locked_at,omitempty"`
	PricingLockedBy     *int64     `json:"pricing_locked_by,string,omitempty"`
	PricingLockedReason *string    `json:"pricing_locked_reason,omitempty"`

	PricingSnapshot datatypes.JSON  `json:"pricing_snapshot,omitempty" gorm:"type:jsonb"`
	PricingVersion  int             `json:"pricing_version" gorm:"not null;default:0"`
	PricedAt        *time.Time      `json:"priced_at,omitempty"`
	PricedBy        *int64          `json:"priced_by,string,omitempty"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:numeric;not null;default:0"`
	Currency        string          `json:"currency" gorm:"type:text;not null;default:'AED'"`

	ExworksBreakdownStatus      BreakdownStatus `json:"exworks_breakdown_status" gorm:"type:text;not null;default:'NONE'"`
	ShowExworksBreakdown        bool            `json:"show_exworks_breakdown" gorm:"not null;default:false"`
	ExworksBreakdownHiddenCodes datatypes.JSON  `json:"exworks_breakdown_hidden_codes,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Quote) TableName() string { return "quotes" }

// BreakdownVisible reports whether the customer may see the exworks breakdown.
func (q *Quote) BreakdownVisible() bool {
	return q.ExworksBreakdownStatus == BreakdownApproved && q.ShowExworksBreakdown
}

// PricingResult carries the fields written back onto the quote after a
// snapshot is taken.
type PricingResult struct {
	Snapshot   datatypes.JSON
	TotalPrice decimal.Decimal
	Currency   string
	PricedAt   time.Time
	PricedBy   int64
}
