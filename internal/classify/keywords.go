package classify

import (
	"strings"

	"github.com/aCarinato/housewise/internal/model"
	"github.com/aCarinato/housewise/internal/textutil"
)

// categoryKeywords maps each category to the phrases that identify it.
// Matching is diacritic- and case-insensitive substring containment over
// normalized text, so entries are word roots where Italian inflection would
// otherwise require one entry per form ("demolizion" covers demolizione and
// demolizioni). Loaded once at process start, never mutated.
var categoryKeywords = map[model.Category][]string{
	model.CategoryDemolizioniSmaltimenti: {
		"demolizion", "smaltiment", "macerie", "detriti", "rimozion",
		"disfaciment", "discarica", "strip out",
	},
	model.CategoryOpereMurarie: {
		"muratur", "opere murarie", "tramezz", "intonac", "massett",
		"assistenza muraria", "tracce", "forati", "soglie",
	},
	model.CategoryImpiantoElettrico: {
		"impianto elettrico", "elettric", "punti luce", "punto luce",
		"quadro elettrico", "interruttor", "punti presa", "frutti", "corrugat",
		"cablaggi", "citofon", "salvavita",
	},
	model.CategoryImpiantoIdraulico: {
		"impianto idraulico", "idraulic", "tubazion", "scarich", "scarico",
		"adduzion", "collettore", "multistrato", "carico e scarico",
	},
	model.CategoryImpiantoRiscaldamento: {
		"riscaldament", "termosifon", "radiator", "caldaia",
		"valvole termostatiche", "termostat", "pannelli radianti",
	},
	model.CategoryClimatizzazione: {
		"climatizza", "condizionator", "aria condizionata", "split",
		"unita esterna", "unita interna",
	},
	model.CategoryPannelliFotovoltaici: {
		"fotovoltaic", "pannell", "moduli", "kwp", "solare",
	},
	model.CategoryInverter: {
		"inverter", "ottimizzator",
	},
	model.CategoryBatteriaAccumulo: {
		"accumulo", "batteria", "batterie", "storage",
	},
	model.CategoryPompaDiCalore: {
		"pompa di calore", "pompe di calore", "pdc", "monoblocco", "idronic",
	},
	model.CategoryImpiantoGas: {
		"impianto gas", "tubazione gas", "allaccio gas", "metano", "gas",
	},
	model.CategoryPavimentiRivestimenti: {
		"paviment", "rivestiment", "piastrell", "gres", "parquet",
		"posa in opera", "battiscopa", "ceramica",
	},
	model.CategoryBagnoSanitari: {
		"sanitari", "bagno", "doccia", "piatto doccia", "wc", "bidet",
		"lavabo", "miscelator", "rubinetteria", "vasca",
	},
	model.CategoryInfissiSerramenti: {
		"infiss", "serrament", "finestr", "persian", "tapparell",
		"zanzarier", "vetrocamera", "avvolgibil",
	},
	model.CategoryPorteInterne: {
		"porte interne", "porta interna", "porta blindata", "portoncino",
		"porte", "manigli",
	},
	model.CategoryImbiancaturaPittura: {
		"imbiancatur", "tinteggiatur", "pittur", "rasatur", "idropittur",
		"smalto", "verniciatur",
	},
	model.CategoryCartongessoControsoffitti: {
		"cartongesso", "controsoffitt", "contropareti", "veletta",
	},
	model.CategoryImpermeabilizzazioneIsolamento: {
		"impermeabilizza", "guaina", "isolament", "coibenta", "cappotto",
		"insufflaggio", "barriera al vapore",
	},
	model.CategoryPonteggiSicurezza: {
		"ponteggi", "ponteggio", "trabattell", "oneri della sicurezza",
		"sicurezza", "recinzione di cantiere",
	},
	model.CategoryPraticheTecniche: {
		"pratica edilizia", "pratiche edilizie", "accatastament",
		"direzione lavori", "progettazion", "collaudo", "certificazion",
		"attestato", "sanatoria", "permesso di costruire",
	},
}

// disposalRoot is the word root that marks debris disposal as mentioned.
const disposalRoot = "smaltiment"

// exclusionTokens are the phrases that mark work as excluded from the quote.
var exclusionTokens = []string{
	"escluso", "esclusa", "escluse", "esclusi",
	"non incluso", "non inclusa", "non compreso", "non compresa",
	"a carico del cliente", "a carico committente",
	"excluded", "not included",
}

// quantityTokens indicate a measurable quantity on a line.
var quantityTokens = []string{
	"pz", "kwp", "kwh", "kw", "mq", "ml", "n.", "nr",
	"punti", "punto", "a corpo", "corpo",
}

// authorizationTokens indicate that grid-connection or permit paperwork is
// being handled as part of the quoted work.
var authorizationTokens = []string{
	"pratica", "pratiche", "gse", "terna", "enel", "e-distribuzione",
	"richiesta di connessione", "connection request",
	"autorizzazione", "scia", "cila",
}

// supplyTokens mark a line as a material supply.
var supplyTokens = []string{"fornitura", "supply"}

// brandTokens mark that a brand or model is specified.
var brandTokens = []string{"marca", "brand", "modello", "model"}

// timelineTokens mark a delivery or schedule promise.
var timelineTokens = []string{"consegna", "tempistiche", "durata lavori"}

// warrantyTokens mark a warranty mention.
var warrantyTokens = []string{"garanzia", "warranty"}

// quantitySensitive lists the categories where a line without any quantity
// indication is worth flagging.
var quantitySensitive = map[model.Category]bool{
	model.CategoryImpiantoElettrico:      true,
	model.CategoryImpiantoIdraulico:      true,
	model.CategoryImpiantoRiscaldamento:  true,
	model.CategoryClimatizzazione:        true,
	model.CategoryPannelliFotovoltaici:   true,
	model.CategoryInverter:               true,
	model.CategoryBatteriaAccumulo:       true,
	model.CategoryPompaDiCalore:          true,
	model.CategoryImpiantoGas:            true,
}

// authorizationSensitive lists the categories whose installation requires
// filing procedures with the grid operator or energy authority.
var authorizationSensitive = map[model.Category]bool{
	model.CategoryPannelliFotovoltaici: true,
	model.CategoryInverter:             true,
	model.CategoryBatteriaAccumulo:     true,
	model.CategoryPompaDiCalore:        true,
}

// normalizedKeywords is categoryKeywords with every phrase pre-normalized
// for matching, built once at init. Read-only afterwards, safe for
// concurrent use.
var normalizedKeywords = buildNormalizedKeywords()

func buildNormalizedKeywords() map[model.Category][]string {
	out := make(map[model.Category][]string, len(categoryKeywords))
	for cat, words := range categoryKeywords {
		normalized := make([]string, 0, len(words))
		for _, w := range words {
			if n := textutil.NormalizeForMatch(w); n != "" {
				normalized = append(normalized, n)
			}
		}
		out[cat] = normalized
	}
	return out
}

// coreDemolitionKeywords are the demolition keywords that do not themselves
// mention disposal, used to detect demolition work quoted without debris
// disposal.
var coreDemolitionKeywords = buildCoreDemolitionKeywords()

func buildCoreDemolitionKeywords() []string {
	all := normalizedKeywords[model.CategoryDemolizioniSmaltimenti]
	core := make([]string, 0, len(all))
	for _, w := range all {
		if !strings.Contains(w, disposalRoot) {
			core = append(core, w)
		}
	}
	return core
}

// Keywords returns the raw keyword list for a category, for display purposes.
func Keywords(c model.Category) []string {
	return categoryKeywords[c]
}
