package domain

import (
	"time"

	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

type ContainerType string

const (
	Container20 ContainerType = "C20"
	Container40 ContainerType = "C40"
)

func ValidContainerType(t ContainerType) bool {
	return t == Container20 || t == Container40
}

// Pricing is the working pricing sheet of one quote. A quote has at most one
// pricing; re-initializing replaces it wholesale.
type Pricing struct {
	ID           int64                         `json:"id,string" gorm:"primaryKey"`
	QuoteID      int64                         `json:"quote_id,string" gorm:"not null;uniqueIndex"`
	TemplateID   int64                         `json:"template_id,string" gorm:"not null"`
	TemplateCode templatedomain.TemplateCode   `json:"template_code" gorm:"type:text;not null"`
	Mode         templatedomain.ShipmentMode   `json:"mode" gorm:"type:text;not null"`
	Direction    templatedomain.TradeDirection `json:"direction" gorm:"type:text;not null"`
	Currency     string                        `json:"currency" gorm:"type:text;not null;default:'AED'"`
	CreatedAt    time.Time                     `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time                     `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	Blocks  []ContainerBlock `json:"blocks,omitempty" gorm:"foreignKey:PricingID"`
	Charges []Charge         `json:"charges,omitempty" gorm:"foreignKey:PricingID"`
}

func (Pricing) TableName() string { return "quote_pricings" }

// ContainerBlock groups container-based charges of one container type. The
// primary block is created at initialization; add-on blocks follow in steps
// of ten.
type ContainerBlock struct {
	ID            int64         `json:"id,string" gorm:"primaryKey"`
	PricingID     int64         `json:"pricing_id,string" gorm:"not null;index"`
	ContainerType ContainerType `json:"container_type" gorm:"type:text;not null"`
	ContainerQty  int           `json:"container_qty" gorm:"not null"`
	IsAddon       bool          `json:"is_addon" gorm:"not null;default:false"`
	SortOrder     int           `json:"sort_order" gorm:"not null"`
	CreatedAt     time.Time     `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ContainerBlock) TableName() string { return "pricing_container_blocks" }

// Charge is one priced line on a pricing sheet. Template capability flags
// are copied onto the charge at creation so later computation never needs a
// template lookup.
type Charge struct {
	ID        int64                      `json:"id,string" gorm:"primaryKey"`
	PricingID int64                      `json:"pricing_id,string" gorm:"not null;index"`
	BlockID   *int64                     `json:"block_id,string,omitempty" gorm:"index"`
	Code      string                     `json:"code" gorm:"type:text;not null"`
	Label     string                     `json:"label" gorm:"type:text;not null"`
	Group     templatedomain.ChargeGroup `json:"group" gorm:"column:charge_group;type:text;not null"`
	QtyBasis  templatedomain.QtyBasis    `json:"qty_basis" gorm:"type:text;not null"`
	SortOrder int                        `json:"sort_order" gorm:"not null"`

	IsLabelling   bool `json:"is_labelling" gorm:"not null;default:false"`
	IsDiscount    bool `json:"is_discount" gorm:"not null;default:false"`
	CanBeNegative bool `json:"can_be_negative" gorm:"not null;default:false"`

	BuyRate   decimal.Decimal     `json:"buy_rate" gorm:"type:numeric;not null;default:0"`
	SellRate  decimal.Decimal     `json:"sell_rate" gorm:"type:numeric;not null;default:0"`
	Qty       decimal.Decimal     `json:"qty" gorm:"type:numeric;not null;default:1"`
	TotalSell decimal.Decimal     `json:"total_sell" gorm:"type:numeric;not null;default:0"`
	Margin    decimal.NullDecimal `json:"margin" gorm:"type:numeric"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Charge) TableName() string { return "pricing_charges" }
