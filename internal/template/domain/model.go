package domain

import "time"

// ShipmentMode is the transport mode a template applies to.
type ShipmentMode string

const (
	ModeAir ShipmentMode = "AIR"
	ModeSea ShipmentMode = "SEA"
)

// TradeDirection distinguishes export and import templates.
type TradeDirection string

const (
	DirectionExport TradeDirection = "EXPORT"
	DirectionImport TradeDirection = "IMPORT"
)

// ChargeGroup buckets a line for customer-facing aggregation.
type ChargeGroup string

const (
	GroupMain              ChargeGroup = "MAIN"
	GroupExworks           ChargeGroup = "EXWORKS"
	GroupClearance         ChargeGroup = "CLEARANCE"
	GroupImportClearance   ChargeGroup = "IMPORT_CLEARANCE"
	GroupExportClearance   ChargeGroup = "EXPORT_CLEARANCE"
	GroupTransferOwnership ChargeGroup = "TRANSFER_OWNERSHIP"
)

// QtyBasis is the physical measure a rate is multiplied against.
type QtyBasis string

const (
	BasisShipment        QtyBasis = "SHIPMENT"
	BasisKgActual        QtyBasis = "KG_ACTUAL"
	BasisKgChargeableMax QtyBasis = "KG_CHARGEABLE_MAX"
	BasisPiece           QtyBasis = "PIECE"
	BasisContainer       QtyBasis = "CONTAINER"
	BasisCBM             QtyBasis = "CBM"
)

// TemplateCode is the closed set of pricing scenarios. The catalog seeds one
// template per code; dispatch tables elsewhere key on these values.
type TemplateCode string

const (
	AirExportLocal          TemplateCode = "AIR_EXPORT_LOCAL"
	AirExportFreezone       TemplateCode = "AIR_EXPORT_FREEZONE"
	AirExportTransit        TemplateCode = "AIR_EXPORT_TRANSIT"
	AirImportLocalClearance TemplateCode = "AIR_IMPORT_LOCAL_CLEARANCE"
	AirImportReexport       TemplateCode = "AIR_IMPORT_REEXPORT"
	SeaToAir                TemplateCode = "SEA_TO_AIR"
	SeaExportLocal          TemplateCode = "SEA_EXPORT_LOCAL"
	SeaExportFreezone       TemplateCode = "SEA_EXPORT_FREEZONE"
	SeaExportTransit        TemplateCode = "SEA_EXPORT_TRANSIT"
	SeaExportLCL            TemplateCode = "SEA_EXPORT_LCL"
	SeaImportLocal          TemplateCode = "SEA_IMPORT_LOCAL"
	SeaImportLCL            TemplateCode = "SEA_IMPORT_LCL"

	AirExportTransferOwnership TemplateCode = "AIR_EXPORT_TRANSFER_OWNERSHIP"
	AirImportTransferOwnership TemplateCode = "AIR_IMPORT_TRANSFER_OWNERSHIP"
	SeaExportTransferOwnership TemplateCode = "SEA_EXPORT_TRANSFER_OWNERSHIP"
	SeaImportTransferOwnership TemplateCode = "SEA_IMPORT_TRANSFER_OWNERSHIP"
)

// TransferOwnershipCode resolves the transfer-of-ownership template for a
// shipment mode and trade direction.
func TransferOwnershipCode(mode ShipmentMode, direction TradeDirection) TemplateCode {
	if mode == ModeAir && direction == DirectionExport {
		return AirExportTransferOwnership
	}
	if mode == ModeAir && direction == DirectionImport {
		return AirImportTransferOwnership
	}
	if mode == ModeSea && direction == DirectionExport {
		return SeaExportTransferOwnership
	}
	return SeaImportTransferOwnership
}

type Template struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	Code      TemplateCode   `json:"code" gorm:"type:text;not null;uniqueIndex"`
	Name      string         `json:"name" gorm:"type:text;not null"`
	Mode      ShipmentMode   `json:"mode" gorm:"type:text;not null;index"`
	Direction TradeDirection `json:"direction" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`

	Lines []TemplateLine `json:"lines,omitempty" gorm:"foreignKey:TemplateID"`
}

func (Template) TableName() string { return "pricing_templates" }

// TemplateLine is one charge definition inside a template. Lines are unique
// by (template, code). IsDefault lines are created at initialization and can
// never be removed from a quote; IsOptional lines are added on demand.
// AllowMultiple permits repeated instances of the same code on one pricing.
type TemplateLine struct {
	ID            int64       `json:"id" gorm:"primaryKey"`
	TemplateID    int64       `json:"template_id" gorm:"not null;uniqueIndex:ux_template_lines_code,priority:1"`
	Code          string      `json:"code" gorm:"type:text;not null;uniqueIndex:ux_template_lines_code,priority:2"`
	Label         string      `json:"label" gorm:"type:text;not null"`
	Group         ChargeGroup `json:"group" gorm:"column:charge_group;type:text;not null"`
	QtyBasis      QtyBasis    `json:"qty_basis" gorm:"type:text;not null"`
	SortOrder     int         `json:"sort_order" gorm:"not null"`
	IsDefault     bool        `json:"is_default" gorm:"not null;default:false"`
	IsOptional    bool        `json:"is_optional" gorm:"not null;default:false"`
	IsLabelling   bool        `json:"is_labelling" gorm:"not null;default:false"`
	IsDiscount    bool        `json:"is_discount" gorm:"not null;default:false"`
	CanBeNegative bool        `json:"can_be_negative" gorm:"not null;default:false"`
	AllowMultiple bool        `json:"allow_multiple" gorm:"not null;default:false"`
}

func (TemplateLine) TableName() string { return "pricing_template_lines" }
