package csv

import (
	"fmt"
	"os"
)

// Default filenames for the exported example files.
const (
	MasterTemplateName  = "modelo_etiquetas_agt.csv"
	ProductTemplateName = "modelo_etiquetas.csv"
)

// Example input files offered to operators so the header row always matches
// the active schema. BOM-prefixed so Excel opens them as UTF-8.
const (
	masterTemplate = bom + "MODELO;QUANTIDADE;PESO_BRUTO;PESO_LIQUIDO;DIMENSOES;EAN;DUN;QTD_ETIQUETAS\n" +
		"AGT-SFT1;20;14,40;13,60;555 x 365 x 385;7898663992717;17898663996118;1\n"

	productTemplate = bom + "NOME_CLIENTE;CODIGO;EAN;DESCRICAO;LOTE;VENCIMENTO;QUANTIDADE;QTD_ETIQUETAS\n" +
		"SYN;CSSK;7891234567890;CREA Sour Morango com Kiwi;GCRMK2408012;02/2027;10 UN;1\n"
)

// MasterTemplate returns the example master carton input file.
func MasterTemplate() string { return masterTemplate }

// ProductTemplate returns the example product label input file.
func ProductTemplate() string { return productTemplate }

// WriteTemplate writes a template file to path.
func WriteTemplate(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing template %s: %w", path, err)
	}
	return nil
}
