package domain

import (
	"context"
	"errors"
)

type Service interface {
	// List returns the templates available for a shipment mode, name-sorted.
	List(ctx context.Context, mode ShipmentMode) ([]Response, error)
	// Get returns a template with its lines, sorted by line order.
	Get(ctx context.Context, code TemplateCode) (*Template, error)
	// DefaultLines returns the lines created at pricing initialization.
	DefaultLines(ctx context.Context, code TemplateCode) ([]TemplateLine, error)
	// Addons returns the optional lines that may be added after initialization.
	Addons(ctx context.Context, code TemplateCode) ([]AddonResponse, error)
	// Line resolves a single line definition by code within a template.
	Line(ctx context.Context, code TemplateCode, lineCode string) (*TemplateLine, error)
}

type Response struct {
	Code      TemplateCode   `json:"code"`
	Name      string         `json:"name"`
	Mode      ShipmentMode   `json:"mode"`
	Direction TradeDirection `json:"direction"`
}

type AddonResponse struct {
	Code     string      `json:"code"`
	Label    string      `json:"label"`
	Group    ChargeGroup `json:"group"`
	QtyBasis QtyBasis    `json:"qty_basis"`
}

var (
	ErrNotFound     = errors.New("template_not_found")
	ErrLineNotFound = errors.New("template_line_not_found")
	ErrInvalidMode  = errors.New("invalid_shipment_mode")
)
