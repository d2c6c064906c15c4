package dosage

import "fmt"

const (
	LanguageSpanish = "es"
	LanguageEnglish = "en"

	// DefaultLanguage is used when a Request does not name a supported one.
	DefaultLanguage = LanguageSpanish
)

// Messages is a notes catalog. Format strings take already formatted
// numbers as %s verbs.
type Messages struct {
	// amount, unit, product
	Dose string
	// amount, unit, product, direction verb
	PHDose string
	Raise  string
	Lower  string

	DisinfectantAtTarget   string
	PHInRange              string
	AlkalinityAtTarget     string
	StabilizerAtTarget     string
	DilutionCannotIncrease string
	NegligibleDose         string
	NegligibleDilution     string

	// liters, percent
	Dilution string
	// amount, unit
	GranularStabilizer string

	Products map[ProductID]string
}

var catalogs = map[string]Messages{
	LanguageSpanish: {
		Dose:                   "Agregar %s %s de %s",
		PHDose:                 "Agregar %s %s de %s para %s el pH",
		Raise:                  "subir",
		Lower:                  "bajar",
		DisinfectantAtTarget:   "El nivel actual ya está en o por encima del objetivo",
		PHInRange:              "El pH ya está en el rango objetivo",
		AlkalinityAtTarget:     "La alcalinidad actual ya está en o por encima del objetivo",
		StabilizerAtTarget:     "El CYA actual ya está en o por encima del objetivo",
		DilutionCannotIncrease: "Para reducir CYA se requiere dilución. No se puede aumentar con este método.",
		NegligibleDose:         "El cambio es despreciable, no se requiere dosis",
		NegligibleDilution:     "La reducción es despreciable, no se requiere reemplazar agua",
		Dilution:               "Reemplazar %s L de agua (aprox %s%% del volumen total)",
		GranularStabilizer:     "Agregar %s %s de ácido cianúrico granulado",
		Products: map[ProductID]string{
			SodiumHypochlorite:  "hipoclorito de sodio líquido",
			CalciumHypochlorite: "hipoclorito de calcio granulado",
			DichlorGranular:     "dicloro granulado",
			TrichlorGranular:    "tricloro granulado",
			TrichlorTablets:     "pastillas de tricloro",
			SodiumCarbonate:     "carbonato de sodio (soda ash)",
			MuriaticAcid:        "ácido muriático",
			SodiumBisulfate:     "bisulfato de sodio",
			SodiumBicarbonate:   "bicarbonato de sodio",
			AlkalinityIncreaser: "aumentador de alcalinidad",
			CyanuricAcid:        "ácido cianúrico",
			FreshWaterDilution:  "dilución con agua nueva",
		},
	},
	LanguageEnglish: {
		Dose:                   "Add %s %s of %s",
		PHDose:                 "Add %s %s of %s to %s the pH",
		Raise:                  "raise",
		Lower:                  "lower",
		DisinfectantAtTarget:   "The current level is already at or above the target",
		PHInRange:              "The pH is already within the target range",
		AlkalinityAtTarget:     "The current alkalinity is already at or above the target",
		StabilizerAtTarget:     "The current CYA is already at or above the target",
		DilutionCannotIncrease: "Lowering CYA requires dilution. It cannot be raised with this method.",
		NegligibleDose:         "The change is negligible, no dose is needed",
		NegligibleDilution:     "The reduction is negligible, no water replacement is needed",
		Dilution:               "Replace %s L of water (approx %s%% of the total volume)",
		GranularStabilizer:     "Add %s %s of granular cyanuric acid",
		Products: map[ProductID]string{
			SodiumHypochlorite:  "liquid sodium hypochlorite",
			CalciumHypochlorite: "granular calcium hypochlorite",
			DichlorGranular:     "granular dichlor",
			TrichlorGranular:    "granular trichlor",
			TrichlorTablets:     "trichlor tablets",
			SodiumCarbonate:     "sodium carbonate (soda ash)",
			MuriaticAcid:        "muriatic acid",
			SodiumBisulfate:     "sodium bisulfate",
			SodiumBicarbonate:   "sodium bicarbonate",
			AlkalinityIncreaser: "alkalinity increaser",
			CyanuricAcid:        "cyanuric acid",
			FreshWaterDilution:  "dilution with fresh water",
		},
	},
}

// MessagesFor returns the catalog for language, falling back to
// DefaultLanguage.
func MessagesFor(language string) Messages {
	if m, ok := catalogs[language]; ok {
		return m
	}
	return catalogs[DefaultLanguage]
}

// SupportedLanguage reports whether a notes catalog exists for language.
func SupportedLanguage(language string) bool {
	_, ok := catalogs[language]
	return ok
}

func (m Messages) productName(id ProductID) string {
	if name, ok := m.Products[id]; ok {
		return name
	}
	return string(id)
}

// The helpers below describe a dose that rounds to zero as negligible
// instead of asking to add nothing.

func (m Messages) dose(amount float64, unit Unit, product ProductID) string {
	if amount == 0 {
		return m.NegligibleDose
	}
	return fmt.Sprintf(m.Dose, formatNumber(amount), unit, m.productName(product))
}

func (m Messages) phDose(amount float64, unit Unit, product ProductID, raise bool) string {
	if amount == 0 {
		return m.NegligibleDose
	}
	verb := m.Lower
	if raise {
		verb = m.Raise
	}
	return fmt.Sprintf(m.PHDose, formatNumber(amount), unit, m.productName(product), verb)
}

func (m Messages) dilution(liters, fraction float64) string {
	liters = round(liters, 2)
	if liters == 0 {
		return m.NegligibleDilution
	}
	return fmt.Sprintf(m.Dilution, formatNumber(liters), formatNumber(round(fraction*100, 1)))
}

func (m Messages) granularStabilizer(amount float64, unit Unit) string {
	if amount == 0 {
		return m.NegligibleDose
	}
	return fmt.Sprintf(m.GranularStabilizer, formatNumber(amount), unit)
}
