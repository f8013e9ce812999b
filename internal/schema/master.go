package schema

// Master carton column names.
const (
	ColModel       = "MODELO"
	ColQuantity    = "QUANTIDADE"
	ColGrossWeight = "PESO_BRUTO"
	ColNetWeight   = "PESO_LIQUIDO"
	ColDimensions  = "DIMENSOES"
	ColEAN         = "EAN"
	ColDUN         = "DUN"
	ColCopies      = "QTD_ETIQUETAS"
)

// MasterFieldSpecs defines the expected CSV columns for master carton labels.
// QTD_ETIQUETAS is optional and defaults to one label per row.
var MasterFieldSpecs = []FieldSpec{
	{Name: ColModel, Required: true},
	{Name: ColQuantity, Required: true},
	{Name: ColGrossWeight, Required: true},
	{Name: ColNetWeight, Required: true},
	{Name: ColDimensions, Required: true},
	{Name: ColEAN, Required: true},
	{Name: ColDUN, Required: true},
	{Name: ColCopies, Required: false},
}
