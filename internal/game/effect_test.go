package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectApply(t *testing.T) {
	tests := []struct {
		eff     Effect
		current int
		want    int
	}{
		{Sap(), 8, 1},
		{Sap(), 0, 1},
		{SetTo(4), 9, 4},
		{Boost(2), 3, 5},
		{Double(), 6, 12},
		{Effect{Kind: EffectKind(42)}, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.eff.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.eff.Apply(tt.current))
		})
	}
}

func TestDefaultPrioritiesOrderForcingBeforeArithmetic(t *testing.T) {
	assert.Less(t, Sap().Priority, SetTo(1).Priority)
	assert.Less(t, SetTo(1).Priority, Boost(1).Priority)
	assert.Less(t, Boost(1).Priority, Double().Priority)
}

func TestWithPriorityCopies(t *testing.T) {
	base := Boost(1)
	moved := base.WithPriority(9)
	assert.Equal(t, 9, moved.Priority)
	assert.Equal(t, DefaultPriority(EffectBoost), base.Priority)
	assert.Equal(t, "+1(p9)", moved.String())
}
