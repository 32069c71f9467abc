package domain

// KeyColumn is the business-key header used by the blank-row filter. Rows
// without a value here are subtotals or layout artifacts, not delivery
// orders.
const KeyColumn = "Type"

// CanonicalOrder is the delivery-order column sequence expected by the
// downstream reporting layer. Header names are matched exactly, whitespace
// included, against the raw SAP export headers.
var CanonicalOrder = []string{
	"Material",
	"Delivery #",
	"ShpPoint",
	"Type",
	"Ac.GI date",
	"Quantity",
	"Volume",
	"Division",
	"State",
}

// ColumnMapping maps raw delivery-order export headers to the snake_case
// column names used by the database export flow. Headers absent from this
// map are dropped during mapping.
var ColumnMapping = map[string]string{
	"Material":           "material_id",
	"Delivery #":         "delivery_number",
	"Ship-to":            "ship_to",
	"Carrier":            "carrier_name",
	"ShpPoint":           "shipping_point",
	"SO Created Date":    "so_created_date",
	"Ac.GI date":         "ac_gi_date",
	"Delivery Date":      "delivery_date",
	"IOD from 3PL":       "iod_from_3pl",
	"PlanShipSt":         "planned_ship_start",
	"S.Org(G)":           "sales_org",
	"P/O #":              "purchase_order",
	"Type":               "record_type",
	"Shipment":           "shipment_number",
	"Sold-to":            "sold_to",
	"[WE]Name1":          "customer_name",
	"[WE]State":          "customer_state",
	"State":              "state",
	"Pro #":              "pro_number",
	"DOCrtDate":          "document_created_date",
	"Serial no. profile": "serial_no_profile",
	"Ship Crt":           "ship_crt",
	"G/I Date":           "g_i_date",
	"PlanLoadSt":         "planloadst",
	"[WE]Street":         "we_street",
	"[WE]City":           "we_city",
	"[WE]Country":        "we_country",
	"[WE]Zipcode":        "we_zipcode",
	"Division":           "division",
	"Quantity":           "quantity",
	"Plan G/I (DO)":      "plan_g_i_do_",
	"Qty.Unit":           "qty_unit",
	"Delivery type":      "delivery_type",
	"DOCrtTime":          "docrttime",
	"Material Group":     "material_group",
	"Volume":             "volume",
	"Vol.Unit":           "vol_unit",
	"Weight":             "weight",
	"Wgt.Unit":           "wgt_unit",
	"ShTy":               "shty",
	"S/O #":              "s_o_",
	"S/O item#":          "s_o_item_",
	"P/O item#":          "p_o_item_",
	"Cust.Grp":           "cust_grp",
	"Escort/Txt3":        "escort_txt3",
	"ActLT":              "actlt",
}

// ColumnsToDrop lists raw headers removed outright by the database export
// flow even though they appear in the source files.
var ColumnsToDrop = []string{"Status"}

// NumericColumns lists mapped column names whose values carry thousands
// separators in the raw exports and must be normalized to plain numbers.
var NumericColumns = []string{
	"delivery_number", "sales_org", "shipment_number", "quantity",
	"volume", "weight", "s_o_", "s_o_item_", "actlt",
}

// DateColumns lists mapped column names normalized to YYYY-MM-DD.
var DateColumns = []string{
	"so_created_date", "ac_gi_date", "delivery_date", "iod_from_3pl",
	"planned_ship_start", "document_created_date", "ship_crt", "g_i_date",
	"planloadst", "plan_g_i_do_",
}
