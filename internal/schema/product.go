package schema

// Product label column names. ColEAN and ColCopies are shared with the
// master carton schema.
const (
	ColClient      = "NOME_CLIENTE"
	ColCode        = "CODIGO"
	ColDescription = "DESCRICAO"
	ColLot         = "LOTE"
	ColExpiry      = "VENCIMENTO"
)

// ProductFieldSpecs defines the expected CSV columns for product labels.
// LOTE and VENCIMENTO are required only when the lot/expiry block is active.
func ProductFieldSpecs(withLot bool) []FieldSpec {
	return []FieldSpec{
		{Name: ColClient, Required: true},
		{Name: ColCode, Required: true},
		{Name: ColEAN, Required: true},
		{Name: ColDescription, Required: true},
		{Name: ColLot, Required: withLot},
		{Name: ColExpiry, Required: withLot},
		{Name: ColQuantity, Required: true},
		{Name: ColCopies, Required: false},
	}
}
