package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeConfidence(t *testing.T) {
	tests := []struct {
		name      string
		hits      int
		hasAmount bool
		want      float64
	}{
		{
			name:      "baseline with no evidence",
			hits:      0,
			hasAmount: false,
			want:      0.5,
		},
		{
			name:      "single hit",
			hits:      1,
			hasAmount: false,
			want:      0.65,
		},
		{
			name:      "two hits reach the hit cap",
			hits:      2,
			hasAmount: false,
			want:      0.8,
		},
		{
			name:      "hits beyond the cap add nothing",
			hits:      5,
			hasAmount: false,
			want:      0.8,
		},
		{
			name:      "amount adds a flat bonus",
			hits:      0,
			hasAmount: true,
			want:      0.7,
		},
		{
			name:      "everything capped at one",
			hits:      10,
			hasAmount: true,
			want:      1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeConfidence(tt.hits, tt.hasAmount)
			assert.InDelta(t, tt.want, got, 0.0001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
