package semicrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_Has_DetectsIndividualBits(t *testing.T) {
	f := DisableWGCache | EnableLikelihoodOnly

	assert.True(t, f.Has(DisableWGCache))
	assert.True(t, f.Has(EnableLikelihoodOnly))
	assert.False(t, f.Has(DisableRegularization))
	assert.False(t, f.Has(DisableAdaGrad))
	assert.False(t, f.Has(DisableDateVersion))
}

func TestFlags_ZeroValue_HasNoBitsSet(t *testing.T) {
	var f Flags
	assert.False(t, f.Has(DisableWGCache))
}
