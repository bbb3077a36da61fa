package domain

import (
	templatedomain "github.com/freightdesk/tariff/internal/template/domain"
)

// containerBlockTemplates are the sea scenarios whose container charges are
// grouped into typed container blocks.
var containerBlockTemplates = map[templatedomain.TemplateCode]bool{
	templatedomain.SeaExportLocal:    true,
	templatedomain.SeaExportFreezone: true,
	templatedomain.SeaExportTransit:  true,
	templatedomain.SeaImportLocal:    true,
}

// addonBlockTemplates are the scenarios that accept additional container
// blocks after initialization. Import pricings keep their single block.
var addonBlockTemplates = map[templatedomain.TemplateCode]bool{
	templatedomain.SeaExportLocal:    true,
	templatedomain.SeaExportFreezone: true,
	templatedomain.SeaExportTransit:  true,
}

// UsesContainerBlocks reports whether initialization must create a primary
// container block for this template.
func UsesContainerBlocks(code templatedomain.TemplateCode) bool {
	return containerBlockTemplates[code]
}

// SupportsAddonBlocks reports whether more container blocks can be attached
// after initialization.
func SupportsAddonBlocks(code templatedomain.TemplateCode) bool {
	return addonBlockTemplates[code]
}

// AddonBlockLineExcluded filters default lines that never repeat per block.
// A sea local import carries one delivery order for the whole shipment.
func AddonBlockLineExcluded(code templatedomain.TemplateCode, lineCode string) bool {
	return code == templatedomain.SeaImportLocal && lineCode == "DELIVERY_ORDER"
}
