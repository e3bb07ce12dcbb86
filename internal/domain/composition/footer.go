package composition

import (
	"github.com/jhoicas/invoice-composer/internal/domain/entity"
	"github.com/jhoicas/invoice-composer/pkg/i18n"
)

// FooterSection pie: notas libres, datos bancarios y avisos legales.
// Un campo vacío significa que esa parte no se dibuja.
type FooterSection struct {
	NotesLines  []string `json:"notesLines,omitempty"`
	BankDetails []Field  `json:"bankDetails,omitempty"`
	TaxIDLine   string   `json:"taxIdLine,omitempty"`
	TaxNote     string   `json:"taxNote,omitempty"`
}

// HasBankDetails indica si se dibuja el bloque bancario.
func (f FooterSection) HasBankDetails() bool { return len(f.BankDetails) > 0 }

func Footer(doc *entity.Document, labels i18n.Labels) FooterSection {
	doc = orEmpty(doc)
	s := doc.Sender

	out := FooterSection{NotesLines: splitLines(doc.Notes)}

	// El nombre del banco solo acompaña a titular, IBAN o BIC; por sí solo no abre el bloque.
	if s.HasBankDetails() {
		out.BankDetails = resolveFields(labels, []fieldSpec{
			present(i18n.KeyAccountOwner, s.BankOwner),
			present(i18n.KeyIBANLabel, s.IBAN),
			present(i18n.KeyBICLabel, s.BIC),
			present(i18n.KeyBankLabel, s.BankName),
		})
	}

	if f, ok := present(i18n.KeyTaxIDLabel, s.TaxID).resolve(labels); ok {
		out.TaxIDLine = f.Label + " " + f.Value
	}
	if doc.SmallBusinessNote {
		out.TaxNote = labels.Get(i18n.KeyTaxNote)
	}
	return out
}
