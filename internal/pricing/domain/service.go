package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
	"github.com/shopspring/decimal"
)

type Service interface {
	// Initialize creates (or recreates) the pricing sheet of a quote from a
	// template. Any previous pricing for the quote is replaced.
	Initialize(ctx context.Context, req InitializeRequest) (*Pricing, error)
	// Get returns the pricing with blocks and charges in display order.
	Get(ctx context.Context, quoteID int64) (*Pricing, error)
	ListBlocks(ctx context.Context, quoteID int64) ([]ContainerBlock, error)
	AddContainerBlock(ctx context.Context, req AddBlockRequest) (*Pricing, error)
	// AddonCandidates lists the optional template lines not yet priced.
	AddonCandidates(ctx context.Context, quoteID int64) ([]templatedomain.AddonResponse, error)
	AddLine(ctx context.Context, req AddLineRequest) (*Pricing, error)
	RemoveLine(ctx context.Context, req RemoveLineRequest) (*Pricing, error)
	UpdateCharge(ctx context.Context, req UpdateChargeRequest) (*Charge, error)
	// AttachTransferOwnership overlays the transfer-of-ownership charge set
	// onto an existing pricing, or starts a TOO-only pricing.
	AttachTransferOwnership(ctx context.Context, req AttachTransferOwnershipRequest) (*Pricing, error)
	OpsTotals(ctx context.Context, quoteID int64) (*OpsTotalsResponse, error)
	Lock(ctx context.Context, req LockRequest) (*LockState, error)
	Unlock(ctx context.Context, quoteID int64) (*LockState, error)
	LockState(ctx context.Context, quoteID int64) (*LockState, error)
	// Snapshot freezes the current pricing onto the quote and bumps the
	// pricing version.
	Snapshot(ctx context.Context, quoteID int64) (*SnapshotResponse, error)
	CustomerView(ctx context.Context, req CustomerViewRequest) (map[string]interface{}, error)
}

type InitializeRequest struct {
	QuoteID       int64                       `json:"quote_id,string"`
	TemplateCode  templatedomain.TemplateCode `json:"template_code" binding:"required"`
	Currency      string                      `json:"currency"`
	ContainerType ContainerType               `json:"container_type"`
	ContainerQty  int                         `json:"container_qty"`
}

type AddBlockRequest struct {
	QuoteID       int64         `json:"quote_id,string"`
	ContainerType ContainerType `json:"container_type" binding:"required"`
	ContainerQty  int           `json:"container_qty" binding:"required"`
}

type AddLineRequest struct {
	QuoteID int64  `json:"quote_id,string"`
	Code    string `json:"code" binding:"required"`
	BlockID *int64 `json:"block_id,string"`
}

type RemoveLineRequest struct {
	QuoteID  int64
	ChargeID int64
}

// UpdateChargeRequest carries a partial rate update. Omitted rates keep
// their previous value.
type UpdateChargeRequest struct {
	QuoteID  int64
	ChargeID int64
	BuyRate  *decimal.Decimal `json:"buy_rate"`
	SellRate *decimal.Decimal `json:"sell_rate"`
}

type AttachTransferOwnershipRequest struct {
	QuoteID   int64
	Direction templatedomain.TradeDirection `json:"direction"`
}

// Lock reasons used by the quote workflow when it freezes pricing
// implicitly.
const (
	LockReasonQuotationSent    = "quotation_sent"
	LockReasonBookingConfirmed = "booking_confirmed"
)

type LockRequest struct {
	QuoteID int64
	Reason  string `json:"reason" binding:"required"`
}

type LockState struct {
	Locked   bool       `json:"locked"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
	LockedBy *int64     `json:"lockedBy,string,omitempty"`
	Reason   *string    `json:"reason,omitempty"`
}

type CustomerViewRequest struct {
	QuoteID int64
	// StaffPreview forces the breakdown open regardless of quote approval.
	StaffPreview bool
}

type SnapshotResponse struct {
	QuoteID        int64                       `json:"quoteId,string"`
	Mode           templatedomain.ShipmentMode `json:"mode"`
	PricingVersion int                         `json:"pricingVersion"`
	TotalSell      decimal.Decimal `json:"totalSell"`
	Currency       string          `json:"currency"`
	PricedAt       time.Time       `json:"pricedAt"`
}

type OpsRow struct {
	Field       string                     `json:"field"`
	Code        string                     `json:"code"`
	Group       templatedomain.ChargeGroup `json:"group"`
	BlockID     *int64                     `json:"blockId,string,omitempty"`
	BuyRate     decimal.Decimal            `json:"buyRate"`
	SellRate    decimal.Decimal            `json:"sellRate"`
	QtyOrWeight decimal.Decimal            `json:"qtyOrWeight"`
	TotalSell   decimal.Decimal            `json:"totalSell"`
	Margin      decimal.NullDecimal        `json:"margin"`
}

type OpsBlockTotals struct {
	Import       *decimal.Decimal `json:"import,omitempty"`
	Export       *decimal.Decimal `json:"export,omitempty"`
	OceanFreight *decimal.Decimal `json:"oceanFreight,omitempty"`
	Thc          *decimal.Decimal `json:"thc,omitempty"`
	Exworks      decimal.Decimal  `json:"exworks"`
	Total        decimal.Decimal  `json:"total"`
}

type OpsBlock struct {
	BlockID       int64          `json:"blockId,string"`
	ContainerType ContainerType  `json:"containerType"`
	ContainerQty  int            `json:"containerQty"`
	IsAddon       bool           `json:"isAddon"`
	Totals        OpsBlockTotals `json:"totals"`
}

type OpsSummaryTotals struct {
	Airfreight        *decimal.Decimal `json:"airfreight,omitempty"`
	Thc               *decimal.Decimal `json:"thc,omitempty"`
	ThcIn             *decimal.Decimal `json:"thcIn,omitempty"`
	ThcOut            *decimal.Decimal `json:"thcOut,omitempty"`
	Exworks           *decimal.Decimal `json:"exworks,omitempty"`
	Clearance         *decimal.Decimal `json:"clearance,omitempty"`
	TransferOwnership *decimal.Decimal `json:"transferOwnership,omitempty"`
	Total             *decimal.Decimal `json:"total,omitempty"`
	GrandTotal        decimal.Decimal  `json:"grandTotal"`
}

type OpsTotalsResponse struct {
	Currency string           `json:"currency"`
	Rows     []OpsRow         `json:"rows"`
	Blocks   []OpsBlock       `json:"blocks,omitempty"`
	Totals   OpsSummaryTotals `json:"totals"`
}

var (
	ErrPricingNotFound         = errors.New("pricing_not_initialized")
	ErrTemplateModeMismatch    = errors.New("template_mode_mismatch")
	ErrContainerDetailRequired = errors.New("container_type_and_qty_required")
	ErrAddonNotSupported       = errors.New("addon_block_not_supported")
	ErrDuplicateContainerType  = errors.New("container_type_already_added")
	ErrBlockNotFound           = errors.New("container_block_not_found")
	ErrBlockRequired           = errors.New("container_block_required")
	ErrChargeNotFound          = errors.New("charge_not_found")
	ErrChargeExists            = errors.New("charge_already_added")
	ErrLineMandatory           = errors.New("line_mandatory")
	ErrTransferOwnershipExists = errors.New("transfer_ownership_already_added")
	ErrDirectionRequired       = errors.New("direction_required")
	ErrLockReasonRequired      = errors.New("lock_reason_required")
	ErrAdminOnly               = errors.New("admin_only")
	ErrActorRequired           = errors.New("actor_required")
	ErrNegativeRate            = errors.New("negative_rate_not_allowed")
)

// PricingLockedError rejects a mutation on a locked pricing. It carries the
// lock timestamp so callers can tell the user when pricing was frozen.
type PricingLockedError struct {
	LockedAt time.Time
}

func (e *PricingLockedError) Error() string {
	return fmt.Sprintf("pricing_locked since %s", e.LockedAt.UTC().Format(time.RFC3339))
}

// IsPricingLocked reports whether err is a lock rejection.
func IsPricingLocked(err error) bool {
	var locked *PricingLockedError
	return errors.As(err, &locked)
}
