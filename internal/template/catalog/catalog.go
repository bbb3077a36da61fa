// Package catalog holds the built-in pricing template catalog. The seeder
// upserts these definitions at startup; quoting only ever reads them.
package catalog

import (
	"github.com/freightdesk/tariff/internal/template/domain"
)

// Entry pairs one template with its ordered line definitions.
type Entry struct {
	Code      domain.TemplateCode
	Name      string
	Mode      domain.ShipmentMode
	Direction domain.TradeDirection
	Lines     []domain.TemplateLine
}

type flag func(*domain.TemplateLine)

func labelling(l *domain.TemplateLine) { l.IsLabelling = true }
func discount(l *domain.TemplateLine)  { l.IsDiscount = true; l.CanBeNegative = true }
func negative(l *domain.TemplateLine)  { l.CanBeNegative = true }
func repeatable(l *domain.TemplateLine) { l.AllowMultiple = true }

func line(code, label string, group domain.ChargeGroup, basis domain.QtyBasis, order int, def bool, flags ...flag) domain.TemplateLine {
	l := domain.TemplateLine{
		Code:       code,
		Label:      label,
		Group:      group,
		QtyBasis:   basis,
		SortOrder:  order,
		IsDefault:  def,
		IsOptional: !def,
	}
	for _, f := range flags {
		f(&l)
	}
	return l
}

// def is a mandatory line created at initialization.
func def(code, label string, group domain.ChargeGroup, basis domain.QtyBasis, order int, flags ...flag) domain.TemplateLine {
	return line(code, label, group, basis, order, true, flags...)
}

// opt is a selectable add-on line.
func opt(code, label string, group domain.ChargeGroup, basis domain.QtyBasis, order int, flags ...flag) domain.TemplateLine {
	return line(code, label, group, basis, order, false, flags...)
}

// defEx / optEx cover the most common case: per-shipment EXWORKS lines.
func defEx(code, label string, order int, flags ...flag) domain.TemplateLine {
	return def(code, label, domain.GroupExworks, domain.BasisShipment, order, flags...)
}

func optEx(code, label string, order int, flags ...flag) domain.TemplateLine {
	return opt(code, label, domain.GroupExworks, domain.BasisShipment, order, flags...)
}

// Templates returns the full catalog in seeding order.
func Templates() []Entry {
	return []Entry{
		airExportLocal(),
		airExportFreezone(),
		airExportTransit(),
		airImportLocalClearance(),
		airImportReexport(),
		seaToAir(),
		seaExportLocal(),
		seaExportFreezone(),
		seaExportTransit(),
		seaExportLCL(),
		seaImportLocal(),
		seaImportLCL(),
		transferOwnership(domain.ModeAir, domain.DirectionExport, domain.AirExportTransferOwnership, "Transfer of Ownership (AIR Export)"),
		transferOwnership(domain.ModeAir, domain.DirectionImport, domain.AirImportTransferOwnership, "Transfer of Ownership (AIR Import)"),
		transferOwnership(domain.ModeSea, domain.DirectionExport, domain.SeaExportTransferOwnership, "Transfer of Ownership (SEA Export)"),
		transferOwnership(domain.ModeSea, domain.DirectionImport, domain.SeaImportTransferOwnership, "Transfer of Ownership (SEA Import)"),
	}
}

// airExportCommon is the shared AIR export EXWORKS bundle: the mandatory core
// plus the selectable add-ons and DG extras.
func airExportCommonExworks() []domain.TemplateLine {
	return []domain.TemplateLine{
		defEx("AWB", "AWB", 110),
		defEx("DUE_CARRIER", "D/C (Due Carrier)", 120),
		defEx("LABELLING", "Labelling", 130, labelling),
		defEx("CUSTOMS_BOE", "Customs BOE", 140),
		defEx("HANDLING_SERVICES", "Handling & Services", 150),
		defEx("TRANSPORTATION", "Transportation", 160),

		optEx("EXPORTER_CODE", "Exporter Code", 210),
		optEx("DOCUMENTATION", "Documentation", 220),
		optEx("SCREENING", "Screening", 230),
		optEx("HAWB_FEES", "HAWB Fees", 240),
		optEx("PACKING_CHARGES", "Packing Charges", 250),
		optEx("AIRWAY_BILL_AMENDMENT", "Airway Bill Amendment", 260),
		optEx("CUSTOMS_BOE_AMENDMENT", "Customs BOE Amendment", 270),
		optEx("LABOUR_PORTER", "Labour & Porter Charges", 280),
		optEx("FORKLIFT", "Forklift Charges", 290),
		optEx("BOE_CANCELLATION", "BOE Cancellation Charges", 300),
		optEx("ELI_DOCUMENTATION", "ELI Documentation", 310),
		optEx("STORAGE", "Storage Charges", 320),

		optEx("LESS_DISCOUNTS", "Less Discounts", 330, discount),
		optEx("ROUND_OFF", "Round off", 340, negative),

		optEx("DG_HANDLING", "DG Handling", 410),
		optEx("DG_PACKING", "DG Packing Charges", 420),
		optEx("DG_INSPECTION", "DG Inspection", 430),
		optEx("SLI", "SLI", 440),
	}
}

func airExportLocal() Entry {
	lines := []domain.TemplateLine{
		def("AIRFREIGHT", "Airfreight", domain.GroupMain, domain.BasisKgChargeableMax, 10),
		def("THC", "THC", domain.GroupMain, domain.BasisKgActual, 20),
	}
	lines = append(lines, airExportCommonExworks()...)
	return Entry{
		Code:      domain.AirExportLocal,
		Name:      "Local Air Export (General/DG)",
		Mode:      domain.ModeAir,
		Direction: domain.DirectionExport,
		Lines:     lines,
	}
}

func airExportFreezone() Entry {
	lines := []domain.TemplateLine{
		def("AIRFREIGHT", "Airfreight", domain.GroupMain, domain.BasisKgChargeableMax, 10),
		def("THC", "THC", domain.GroupMain, domain.BasisKgActual, 20),
	}
	lines = append(lines, airExportCommonExworks()...)
	lines = append(lines,
		defEx("EXIT_ENTRY_CHARGES", "Exit / Entry Charges", 170),
		defEx("GATE_PASS_DPW", "Gate Pass DPW", 180),
		defEx("CUSTOMS_INSPECTION", "Customs Inspection", 190),
	)
	return Entry{
		Code:      domain.AirExportFreezone,
		Name:      "Freezone Cargo",
		Mode:      domain.ModeAir,
		Direction: domain.DirectionExport,
		Lines:     lines,
	}
}

func airExportTransit() Entry {
	lines := []domain.TemplateLine{
		def("AIRFREIGHT", "Airfreight", domain.GroupMain, domain.BasisKgChargeableMax, 10),
		def("THC_IN", "THC IN", domain.GroupMain, domain.BasisKgActual, 20),
		def("THC_OUT", "THC OUT", domain.GroupMain, domain.BasisKgActual, 30),
	}
	lines = append(lines, airExportCommonExworks()...)
	lines = append(lines,
		optEx("DELIVERY_ORDER", "Delivery Order", 305),
		optEx("CUSTOMS_INSPECTION", "Customs Inspection", 325),
		optEx("EXIT_ENTRY_CHARGES", "Exit / Entry Charges", 326),
		optEx("DE_CONSOL", "De Consol", 327),
		optEx("EDP", "EDP", 328),
	)
	return Entry{
		Code:      domain.AirExportTransit,
		Name:      "Transit Cargo",
		Mode:      domain.ModeAir,
		Direction: domain.DirectionExport,
		Lines:     lines,
	}
}

func airImportLocalClearance() Entry {
	return Entry{
		Code:      domain.AirImportLocalClearance,
		Name:      "Local Clearance Import",
		Mode:      domain.ModeAir,
		Direction: domain.DirectionImport,
		Lines: []domain.TemplateLine{
			def("DO", "Delivery Order (DO)", domain.GroupMain, domain.BasisShipment, 10),
			def("AIRFREIGHT", "Airfreight", domain.GroupMain, domain.BasisKgChargeableMax, 15),
			def("THC", "THC", domain.GroupMain, domain.BasisKgActual, 20),

			def("EDP", "EDP", domain.GroupClearance, domain.BasisShipment, 110),
			def("BOE", "BOE", domain.GroupClearance, domain.BasisShipment, 120),
			def("TRANSPORT", "Transport", domain.GroupClearance, domain.BasisShipment, 130),
			def("HANDLING_SERVICES", "Handling & Services", domain.GroupClearance, domain.BasisShipment, 140),
			def("LABOUR_PORTER", "Labour & Porter Charges", domain.GroupClearance, domain.BasisShipment, 150),
			def("FORKLIFT", "Forklift Charges", domain.GroupClearance, domain.BasisShipment, 160),
			def("THIRD_PARTY_LICENSE", "Third Party License", domain.GroupClearance, domain.BasisShipment, 170),
			def("DOCUMENTATION", "Documentation", domain.GroupClearance, domain.BasisShipment, 180),
			def("CUSTOMS_BOE", "Customs BOE", domain.GroupClearance, domain.BasisShipment, 190),
			def("DE_CONSOL", "De Consol", domain.GroupClearance, domain.BasisShipment, 200),
			def("VAT_INSPECTION", "VAT Inspection", domain.GroupClearance, domain.BasisShipment, 210),
			def("STORAGE", "Storage Charges", domain.GroupClearance, domain.BasisShipment, 220),
			def("LESS_DISCOUNTS", "Less Discounts", domain.GroupClearance, domain.BasisShipment, 230, discount),
			def("ROUND_OFF", "Round Off", domain.GroupClearance, domain.BasisShipment, 240, negative),
		},
	}
}

func airImportReexport() Entry {
	return Entry{
		Code:      domain.AirImportReexport,
		Name:      "Import for Re-Export (Air)",
		Mode:      domain.ModeAir,
		Direction: domain.DirectionImport,
		Lines: []domain.TemplateLine{
			def("AIRFREIGHT", "Air Freight", domain.GroupMain, domain.BasisKgChargeableMax, 10),
			def("THC_EXPORT", "THC Export", domain.GroupMain, domain.BasisKgActual, 20),
			def("THC_IMPORT", "THC Import", domain.GroupMain, domain.BasisKgActual, 30),
			def("DELIVERY_ORDER", "Delivery Order (DO)", domain.GroupMain, domain.BasisShipment, 40),

			defEx("EDP", "EDP", 110),
			defEx("BOE", "BOE", 120),
			defEx("TRANSPORT", "Transport", 130),
			defEx("HANDLING_SERVICES", "Handling & Services", 140),
			defEx("LABOUR_PORTER", "Labour & Porter Charges", 150),
			defEx("FORKLIFT", "Forklift Charges", 160),
			defEx("THIRD_PARTY_LICENSE", "Third Party License", 170),
			defEx("DOCUMENTATION", "Documentation", 180),
			defEx("CUSTOMS_BOE", "Customs BOE", 190),
			defEx("CUSTOMS_INSPECTION", "Customs Inspection", 200),
			defEx("DM_INSPECTION", "DM Inspection", 210),
			defEx("EXIT_ENTRY_CHARGES", "Exit / Entry Charges", 220),
			defEx("VAT_INSPECTION", "VAT Inspection", 230),
			defEx("STORAGE", "Storage Charges", 240),
			defEx("AIRWAY_BILL_FEE", "Airway Bill Fee", 250),
			defEx("DUE_CARRIER", "Due Carrier D/C", 260),
			def("LABELLING", "Labelling", domain.GroupExworks, domain.BasisPiece, 270, labelling),
			defEx("SCREENING", "Screening", 280),
			defEx("EXPORT_CUSTOMS_BOE_INSPECTION", "Export Customs BOE & Inspection", 290),
			defEx("PACKING_CHARGES", "Packing Charges", 300),

			optEx("LESS_DISCOUNTS", "Less Discounts", 900, discount),
			optEx("ROUND_OFF", "Round Off", 910, negative),
		},
	}
}

func seaToAir() Entry {
	codes := []domain.TemplateLine{
		def("DELIVERY_ORDER", "Delivery Order", domain.GroupMain, domain.BasisShipment, 0),
		def("THC_IMPORT", "THC Import", domain.GroupMain, domain.BasisKgActual, 0),
		def("AIRFREIGHT", "Air Freight", domain.GroupMain, domain.BasisKgChargeableMax, 0),
		def("THC_EXPORT", "THC Export", domain.GroupMain, domain.BasisKgActual, 0),

		defEx("SEA2AIR_IMP_CUSTOMS_BOE", "Import Customs BOE", 0),
		defEx("SEA2AIR_IMP_INSPECTION", "Import Customs Inspection", 0),
		defEx("SEA2AIR_IMP_TOKEN", "Token", 0),
		defEx("SEA2AIR_IMP_TLUC", "TLUC", 0),
		defEx("SEA2AIR_IMP_SEAL", "Seal Charge", 0),
		defEx("SEA2AIR_IMP_EXIT_ENTRY", "Exit Entry Charges", 0),
		defEx("SEA2AIR_IMP_TRANSPORT", "Transportation", 0),
		defEx("SEA2AIR_IMP_DPW_OFFLOAD", "DP World Off-Loading", 0),
		defEx("SEA2AIR_IMP_MECRC", "MECRC Charges", 0),
		defEx("SEA2AIR_IMP_DEMURRAGE", "Demurrage", 0),
		defEx("SEA2AIR_IMP_WAITING", "Waiting Charges", 0),

		defEx("SEA2AIR_EXP_BOE", "Export Customs BOE", 0),
		defEx("SEA2AIR_EXP_INSPECTION", "Export Customs Inspection", 0),
		defEx("SEA2AIR_EXP_DOCUMENTATION", "Documentation", 0),
		defEx("SEA2AIR_EXP_HANDLING", "Handling & Services", 0),
		defEx("SEA2AIR_EXP_INSURANCE", "Insurance", 0),
		defEx("SEA2AIR_EXP_LABOUR", "Labour & Forklift", 0),
		defEx("SEA2AIR_EXP_AWB", "AWB", 0),
		defEx("SEA2AIR_EXP_SCREENING", "Screening", 0),
		defEx("SEA2AIR_EXP_PACKING", "Packing Charges", 0),
		defEx("SEA2AIR_EXP_DUE_CARRIER", "Due Carrier (D/C)", 0),
		defEx("SEA2AIR_EXP_LABELLING", "Labelling", 0, labelling),
	}
	for i := range codes {
		codes[i].SortOrder = i * 10
	}
	return Entry{
		Code:      domain.SeaToAir,
		Name:      "SEA to AIR",
		Mode:      domain.ModeAir,
		Direction: domain.DirectionImport,
		Lines:     codes,
	}
}

func seaExportLocal() Entry {
	return Entry{
		Code:      domain.SeaExportLocal,
		Name:      "Local Sea Export",
		Mode:      domain.ModeSea,
		Direction: domain.DirectionExport,
		Lines: []domain.TemplateLine{
			def("OCEAN_FREIGHT", "Ocean Freight", domain.GroupMain, domain.BasisContainer, 10),
			def("THC", "THC", domain.GroupMain, domain.BasisContainer, 20),

			defEx("CUSTOMS_BOE", "Customs BOE", 110),
			defEx("BL", "BL", 120),
			defEx("TOKEN_VGM", "Token & VGM", 130),
			defEx("DOCUMENTATION", "Documentation", 140),
			defEx("SEAL_CHARGE", "Seal Charge", 150),
			defEx("TRANSPORTATION", "Transportation", 160),
			defEx("HANDLING_SERVICE", "Handling & Service", 170),

			optEx("LESS_DISCOUNTS", "Less Discounts", 900, discount),
			optEx("ROUND_OFF", "Round off", 910, negative),
		},
	}
}

func seaExportFreezone() Entry {
	return Entry{
		Code:      domain.SeaExportFreezone,
		Name:      "Sea Freezone Export",
		Mode:      domain.ModeSea,
		Direction: domain.DirectionExport,
		Lines: []domain.TemplateLine{
			def("OCEAN_FREIGHT", "Ocean Freight", domain.GroupMain, domain.BasisContainer, 10),
			def("THC", "THC", domain.GroupMain, domain.BasisContainer, 20),

			defEx("CUSTOMS_BOE", "Customs BOE", 110),
			defEx("EXIT_ENTRY", "Exit / Entry", 120),
			defEx("CUSTOM_INSPECTION", "Custom Inspection", 130),
			defEx("TRANSPORTATION", "Transportation", 140),
			defEx("VAT_INSPECTION", "VAT Inspection", 150),
			defEx("HANDLING_SERVICE", "Handling Service", 160),
			defEx("BL", "BL", 170),
			defEx("TOKEN_VGM", "Token & VGM", 180),
			defEx("DOCUMENTATION", "Documentation", 190),
			defEx("SEAL_CHARGE", "Seal Charge", 200),

			optEx("LESS_DISCOUNTS", "Less Discounts", 900, discount),
			optEx("ROUND_OFF", "Round off", 910, negative),
		},
	}
}

func seaExportTransit() Entry {
	return Entry{
		Code:      domain.SeaExportTransit,
		Name:      "Sea Transit Export",
		Mode:      domain.ModeSea,
		Direction: domain.DirectionExport,
		Lines: []domain.TemplateLine{
			def("DELIVERY_ORDER", "Delivery Order", domain.GroupImportClearance, domain.BasisShipment, 10),
			def("THC_IN", "THC IN", domain.GroupImportClearance, domain.BasisContainer, 20),

			def("OCEAN_FREIGHT", "Ocean Freight", domain.GroupExportClearance, domain.BasisContainer, 30),
			def("THC_OUT", "THC OUT", domain.GroupExportClearance, domain.BasisContainer, 40),

			defEx("CUSTOMS_BOE", "Customs BOE", 110),
			defEx("BL", "BL", 120),
			defEx("TOKEN_VGM", "Token & VGM", 130),
			defEx("BAF", "BAF", 140),
			defEx("CAF", "CAF", 150),
			defEx("BUNKER_ADJ", "Bunker Adjustment", 160),
			defEx("WAR_RISK", "War Risk", 170),
			defEx("DPC", "DPC", 180),
			defEx("HS_CODE", "HS Code", 190),
			defEx("DOCUMENTATION", "Documentation", 200),
			defEx("SEAL_CHARGE", "Seal Charge", 210),
			defEx("EXIT_ENTRY", "Exit / Entry", 220),
			defEx("CUSTOM_INSPECTION", "Custom Inspection", 230),
			defEx("TRANSPORTATION", "Transportation", 240),
			defEx("HANDLING_SERVICE", "Handling Service", 250),
			defEx("CROSS_STUFFING", "Cross Stuffing", 260),
			defEx("FUMIGATION", "Fumigation", 270),
			defEx("LOAD_LASHING", "Load & Lashing Charges", 280),
			defEx("PORT_STORAGE", "Port Storage", 290),
			defEx("PHYTO_CERT", "Phyto Certification", 300),
			defEx("MECRC", "MECRC Charges", 310),
			defEx("DPW_OFFLOADING", "DP World Off-loading charges", 320),
			defEx("TRANSPORT_WAITING", "Transportation waiting charges", 330),
			defEx("TLUC", "TLUC", 340),
			defEx("DEMURRAGE", "Demurrage", 350),

			optEx("LESS_DISCOUNTS", "Less Discounts", 900, discount),
			optEx("ROUND_OFF", "Round off", 910, negative),
		},
	}
}

func seaExportLCL() Entry {
	return Entry{
		Code:      domain.SeaExportLCL,
		Name:      "Sea Export - LCL",
		Mode:      domain.ModeSea,
		Direction: domain.DirectionExport,
		Lines: []domain.TemplateLine{
			def("OCEAN_FREIGHT", "Ocean Freight", domain.GroupMain, domain.BasisCBM, 10),

			defEx("BL", "BL", 110),
			defEx("CUSTOMS_BOE", "Customs BOE", 120),
			defEx("DP_WORLD_CHARGES", "DP World Charges", 130),
			defEx("TRANSPORT", "Transport", 140),
			defEx("WASHING_CHARGES", "Washing charges", 150),
			defEx("HS_CODE", "HS Code", 160),
			defEx("HANDLING_SERVICES", "Handling & Services", 170),
			defEx("INSPECTION", "Inspection", 180),
			defEx("EXIT_ENTRY", "Exit Entry", 190),
			defEx("CUSTOMS_DUTY", "Customs duty", 200),
			defEx("THIRD_PARTY_LICENSE", "Third Party License", 210),
			defEx("EXPORT_HANDLING", "Export Handling", 220),
			defEx("LABOUR_PORTER", "Labor & Porter Charges", 230),
			defEx("PACKING_CHARGES", "Packing Charges", 240),
			defEx("MISCELLANEOUS", "Miscellaneous", 250),

			defEx("LESS_DISCOUNTS", "Less Discounts", 900, discount),
			defEx("ROUND_OFF", "Round off", 910, negative),
		},
	}
}

func seaImportLocal() Entry {
	return Entry{
		Code:      domain.SeaImportLocal,
		Name:      "Sea Local Import",
		Mode:      domain.ModeSea,
		Direction: domain.DirectionImport,
		Lines: []domain.TemplateLine{
			def("DELIVERY_ORDER", "Delivery Order (DO)", domain.GroupMain, domain.BasisShipment, 10),
			def("THC", "THC", domain.GroupMain, domain.BasisContainer, 20),

			defEx("TOKEN", "Token", 110),
			defEx("TLUC", "TLUC", 120),
			defEx("CUSTOMS_BOE", "Customs BOE", 130),
			defEx("CUSTOMS_INSPECTION", "Customs Inspection", 140),
			defEx("HS_CODE", "HS Code", 150),
			defEx("DPC", "DPC", 160),
			defEx("TRANSPORTATION", "Transportation", 170),
			defEx("HANDLING_SERVICE", "Handling Service", 180),
			defEx("BILL_OF_EXCHANGE", "Bill of Exchange", 190),
			defEx("MECRC_CHARGES", "Mecrc Charges", 200),
			defEx("VAT_INSPECTION", "VAT Inspection", 210),
			defEx("DEMURRAGE", "Demurrage", 220),
			defEx("PORT_STORAGE", "Port Storage", 230),
			defEx("MISCELLANEOUS", "Miscellaneous", 240),

			defEx("ROUND_OFF", "Round off", 900, negative),
		},
	}
}

func seaImportLCL() Entry {
	return Entry{
		Code:      domain.SeaImportLCL,
		Name:      "Sea Import - LCL",
		Mode:      domain.ModeSea,
		Direction: domain.DirectionImport,
		Lines: []domain.TemplateLine{
			def("DELIVERY_ORDER", "Delivery Order (DO)", domain.GroupMain, domain.BasisShipment, 10),

			defEx("DOCUMENTATION", "Documentation", 110),
			defEx("CONTAINER_WASHING", "Container washing", 120),
			defEx("PORT_HANDLING", "Port Handling", 130),
			defEx("CARGO_TRANSFER_FEE", "Cargo transfer fee", 140),
			defEx("WASHING_CHARGES", "Washing charges", 150),
			defEx("HS_CODE", "HS Code", 160),
			defEx("WAREHOUSING_CHARGES", "Warehousing charges", 170),
			def("LCL_CHARGES_CBM", "LCL Charges per CBM", domain.GroupExworks, domain.BasisCBM, 180),
			defEx("HANDLING_SERVICES", "Handling & Services", 190),
			defEx("CUSTOMS_BOE", "Customs BOE", 200),
			defEx("TRANSPORT", "Transport", 210),
			defEx("THIRD_PARTY_LICENSE", "Third Party License", 220),
			defEx("DUTY", "Duty", 230),
			defEx("VAT", "VAT", 240),
			defEx("MISCELLANEOUS", "Miscellaneous", 250),

			defEx("LESS_DISCOUNTS", "Less Discounts", 900, discount),
			defEx("ROUND_OFF", "Round off", 910, negative),
		},
	}
}

func transferOwnership(mode domain.ShipmentMode, direction domain.TradeDirection, code domain.TemplateCode, name string) Entry {
	g := domain.GroupTransferOwnership
	return Entry{
		Code:      code,
		Name:      name,
		Mode:      mode,
		Direction: direction,
		Lines: []domain.TemplateLine{
			def("TOO_TRANSIT_IN", "Transit In", g, domain.BasisShipment, 10, repeatable),
			def("TOO_TRANSIT_OUT", "Transit Out", g, domain.BasisShipment, 20, repeatable),
			def("TOO_CUSTOMS_INSPECTION", "Customs Inspection", g, domain.BasisShipment, 30),
			def("TOO_EXIT_ENTRY", "Exit / Entry Charges", g, domain.BasisShipment, 40),
			def("TOO_DPW_GATE_PASS", "DP World Gate Pass", g, domain.BasisShipment, 50),
			def("TOO_ADDITIONAL_DOCUMENTS", "Additional Documents", g, domain.BasisShipment, 60, repeatable),
			def("TOO_TRANSPORT", "Transport", g, domain.BasisShipment, 70, repeatable),
			def("TOO_CUSTOMS_BOE", "Customs BOE", g, domain.BasisShipment, 80),
			def("TOO_OWNERSHIP_CHARGES", "Transfer of Ownership Charges", g, domain.BasisShipment, 90),
			def("TOO_DOCUMENTATION", "Documentation", g, domain.BasisShipment, 100),
			def("TOO_CUSTOMS_GATE_PASS", "Customs Gate Pass", g, domain.BasisShipment, 110),
			def("TOO_CUSTOMS_SEAL", "Customs Seal", g, domain.BasisShipment, 120),
			def("TOO_WAREHOUSE_STORAGE", "Warehouse Storage", g, domain.BasisShipment, 130),
			def("TOO_STORAGE_CHARGES", "Storage Charges", g, domain.BasisShipment, 140),
			def("TOO_LESS_DISCOUNTS", "Less Discounts", g, domain.BasisShipment, 900, discount),
			def("TOO_ROUND_OFF", "Round Off", g, domain.BasisShipment, 910, negative),
		},
	}
}
