// Package model defines the core domain types shared across the application.
package model

// Category identifies one renovation work category in the fixed ontology.
type Category string

const (
	// CategoryDemolizioniSmaltimenti covers demolition work and debris disposal.
	CategoryDemolizioniSmaltimenti Category = "demolizioni_smaltimenti"
	// CategoryOpereMurarie covers masonry and general building work.
	CategoryOpereMurarie Category = "opere_murarie"
	// CategoryImpiantoElettrico covers the electrical system.
	CategoryImpiantoElettrico Category = "impianto_elettrico"
	// CategoryImpiantoIdraulico covers the plumbing system.
	CategoryImpiantoIdraulico Category = "impianto_idraulico"
	// CategoryImpiantoRiscaldamento covers the heating system.
	CategoryImpiantoRiscaldamento Category = "impianto_riscaldamento"
	// CategoryClimatizzazione covers air conditioning units.
	CategoryClimatizzazione Category = "climatizzazione"
	// CategoryPannelliFotovoltaici covers photovoltaic panels.
	CategoryPannelliFotovoltaici Category = "pannelli_fotovoltaici"
	// CategoryInverter covers photovoltaic inverters and optimizers.
	CategoryInverter Category = "inverter"
	// CategoryBatteriaAccumulo covers battery storage systems.
	CategoryBatteriaAccumulo Category = "batteria_accumulo"
	// CategoryPompaDiCalore covers heat pumps.
	CategoryPompaDiCalore Category = "pompa_di_calore"
	// CategoryImpiantoGas covers the gas system.
	CategoryImpiantoGas Category = "impianto_gas"
	// CategoryPavimentiRivestimenti covers floors and wall coverings.
	CategoryPavimentiRivestimenti Category = "pavimenti_rivestimenti"
	// CategoryBagnoSanitari covers bathroom fixtures and fittings.
	CategoryBagnoSanitari Category = "bagno_sanitari"
	// CategoryInfissiSerramenti covers windows and external frames.
	CategoryInfissiSerramenti Category = "infissi_serramenti"
	// CategoryPorteInterne covers interior doors.
	CategoryPorteInterne Category = "porte_interne"
	// CategoryImbiancaturaPittura covers painting and wall finishing.
	CategoryImbiancaturaPittura Category = "imbiancatura_pittura"
	// CategoryCartongessoControsoffitti covers drywall and false ceilings.
	CategoryCartongessoControsoffitti Category = "cartongesso_controsoffitti"
	// CategoryImpermeabilizzazioneIsolamento covers waterproofing and insulation.
	CategoryImpermeabilizzazioneIsolamento Category = "impermeabilizzazione_isolamento"
	// CategoryPonteggiSicurezza covers scaffolding and site safety.
	CategoryPonteggiSicurezza Category = "ponteggi_sicurezza"
	// CategoryPraticheTecniche covers permits, surveys and technical paperwork.
	CategoryPraticheTecniche Category = "pratiche_tecniche"
	// CategoryUnknown is the fallback when no keyword matches a line.
	CategoryUnknown Category = "unknown"
)

// workCategories is the fixed enumeration order of the ontology. The order is
// observable behavior: category scoring breaks ties by keeping the earliest
// category in this list, so it must stay stable across releases.
var workCategories = []Category{
	CategoryDemolizioniSmaltimenti,
	CategoryOpereMurarie,
	CategoryImpiantoElettrico,
	CategoryImpiantoIdraulico,
	CategoryImpiantoRiscaldamento,
	CategoryClimatizzazione,
	CategoryPannelliFotovoltaici,
	CategoryInverter,
	CategoryBatteriaAccumulo,
	CategoryPompaDiCalore,
	CategoryImpiantoGas,
	CategoryPavimentiRivestimenti,
	CategoryBagnoSanitari,
	CategoryInfissiSerramenti,
	CategoryPorteInterne,
	CategoryImbiancaturaPittura,
	CategoryCartongessoControsoffitti,
	CategoryImpermeabilizzazioneIsolamento,
	CategoryPonteggiSicurezza,
	CategoryPraticheTecniche,
}

// displayNames maps each category to its human-readable Italian label.
var displayNames = map[Category]string{
	CategoryDemolizioniSmaltimenti:         "Demolizioni e smaltimenti",
	CategoryOpereMurarie:                   "Opere murarie",
	CategoryImpiantoElettrico:              "Impianto elettrico",
	CategoryImpiantoIdraulico:              "Impianto idraulico",
	CategoryImpiantoRiscaldamento:          "Impianto di riscaldamento",
	CategoryClimatizzazione:                "Climatizzazione",
	CategoryPannelliFotovoltaici:           "Pannelli fotovoltaici",
	CategoryInverter:                       "Inverter",
	CategoryBatteriaAccumulo:               "Batteria di accumulo",
	CategoryPompaDiCalore:                  "Pompa di calore",
	CategoryImpiantoGas:                    "Impianto gas",
	CategoryPavimentiRivestimenti:          "Pavimenti e rivestimenti",
	CategoryBagnoSanitari:                  "Bagno e sanitari",
	CategoryInfissiSerramenti:              "Infissi e serramenti",
	CategoryPorteInterne:                   "Porte interne",
	CategoryImbiancaturaPittura:            "Imbiancatura e pittura",
	CategoryCartongessoControsoffitti:      "Cartongesso e controsoffitti",
	CategoryImpermeabilizzazioneIsolamento: "Impermeabilizzazione e isolamento",
	CategoryPonteggiSicurezza:              "Ponteggi e sicurezza",
	CategoryPraticheTecniche:               "Pratiche tecniche",
	CategoryUnknown:                        "Non classificato",
}

// WorkCategories returns the ontology in its fixed enumeration order,
// excluding CategoryUnknown. Callers must not mutate the returned slice.
func WorkCategories() []Category {
	return workCategories
}

// AllCategories returns every category including CategoryUnknown, in
// enumeration order with unknown last.
func AllCategories() []Category {
	all := make([]Category, 0, len(workCategories)+1)
	all = append(all, workCategories...)
	all = append(all, CategoryUnknown)
	return all
}

// ParseCategory converts a string identifier to a Category.
// Unrecognized identifiers map to CategoryUnknown.
func ParseCategory(s string) Category {
	c := Category(s)
	if _, ok := displayNames[c]; ok {
		return c
	}
	return CategoryUnknown
}

// IsValid reports whether c is a member of the ontology.
func (c Category) IsValid() bool {
	_, ok := displayNames[c]
	return ok
}

// DisplayName returns the human-readable Italian label for the category.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}
