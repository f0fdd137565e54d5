package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aCarinato/housewise/internal/model"
)

func TestFindLikelyCategory(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantCategory model.Category
		wantMinHits  int
	}{
		{
			name:         "demolition with disposal",
			line:         "Smaltimento macerie e detriti - 800€",
			wantCategory: model.CategoryDemolizioniSmaltimenti,
			wantMinHits:  2,
		},
		{
			name:         "bathroom fixtures",
			line:         "Fornitura sanitari completa",
			wantCategory: model.CategoryBagnoSanitari,
			wantMinHits:  1,
		},
		{
			name:         "photovoltaic panels",
			line:         "Pannelli fotovoltaici 6kWp",
			wantCategory: model.CategoryPannelliFotovoltaici,
			wantMinHits:  2,
		},
		{
			name:         "diacritics are ignored",
			line:         "Climatizzazione unità esterna",
			wantCategory: model.CategoryClimatizzazione,
			wantMinHits:  2,
		},
		{
			name:         "no keyword matches",
			line:         "lorem ipsum dolor sit amet",
			wantCategory: model.CategoryUnknown,
			wantMinHits:  0,
		},
		{
			name:         "empty line",
			line:         "",
			wantCategory: model.CategoryUnknown,
			wantMinHits:  0,
		},
		{
			name:         "punctuation only",
			line:         "!!! ???",
			wantCategory: model.CategoryUnknown,
			wantMinHits:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := FindLikelyCategory(tt.line)
			assert.Equal(t, tt.wantCategory, match.Category)
			assert.GreaterOrEqual(t, match.Hits, tt.wantMinHits)
		})
	}
}

func TestFindLikelyCategory_UnknownIffZeroHits(t *testing.T) {
	lines := []string{
		"Smaltimento macerie e detriti",
		"Fornitura sanitari completa",
		"testo senza alcuna parola chiave",
		"",
		"Tinteggiatura pareti e soffitti",
		"42",
	}

	for _, line := range lines {
		match := FindLikelyCategory(line)
		assert.GreaterOrEqual(t, match.Hits, 0, "line %q", line)
		if match.Category == model.CategoryUnknown {
			assert.Zero(t, match.Hits, "unknown must mean zero hits for %q", line)
		} else {
			assert.Positive(t, match.Hits, "a named category needs at least one hit for %q", line)
		}
	}
}

func TestFindLikelyCategory_TieBreakIsFirstWins(t *testing.T) {
	// "pavimenti" and "sanitari" each score one hit; pavimenti_rivestimenti
	// comes first in the ontology enumeration, so it must win the tie.
	match := FindLikelyCategory("pavimenti e sanitari")
	assert.Equal(t, model.CategoryPavimentiRivestimenti, match.Category)
	assert.Equal(t, 1, match.Hits)

	// The result must be stable across repeated calls.
	for range 10 {
		again := FindLikelyCategory("pavimenti e sanitari")
		assert.Equal(t, match, again)
	}
}

func TestHasAnyToken(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		tokens []string
		want   bool
	}{
		{
			name:   "exclusion phrase present",
			line:   "Opere esterne escluse dal preventivo",
			tokens: exclusionTokens,
			want:   true,
		},
		{
			name:   "customer responsibility phrase",
			line:   "Smontaggio mobili a carico del cliente",
			tokens: exclusionTokens,
			want:   true,
		},
		{
			name:   "no token present",
			line:   "Fornitura e posa pavimento",
			tokens: exclusionTokens,
			want:   false,
		},
		{
			name:   "diacritic insensitive token",
			line:   "unità esterna",
			tokens: []string{"unita"},
			want:   true,
		},
		{
			name:   "empty token list",
			line:   "qualsiasi testo",
			tokens: nil,
			want:   false,
		},
		{
			name:   "empty line",
			line:   "",
			tokens: []string{"escluso"},
			want:   false,
		},
		{
			name:   "blank tokens never match",
			line:   "qualsiasi testo",
			tokens: []string{"", "   "},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAnyToken(tt.line, tt.tokens))
		})
	}
}
