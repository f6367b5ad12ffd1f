package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivation_Shape(t *testing.T) {
	a := NewActivation()

	assert.Contains(t, smdpServers, a.SMDPAddress)
	assert.Equal(t, "LPA:1$"+a.SMDPAddress+"$"+a.ActivationCode, a.LPAString)

	// 32 code characters plus 7 group separators.
	assert.Len(t, a.ActivationCode, 39)
	groups := strings.Split(a.ActivationCode, "-")
	require.Len(t, groups, 8)
	for _, g := range groups {
		assert.Len(t, g, 4)
		for _, r := range g {
			assert.Contains(t, activationCodeAlphabet, string(r))
		}
	}
}

func TestNewActivation_ICCID(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := NewActivation()
		assert.True(t, strings.HasPrefix(a.ICCID, "89"), "ICCID must start with 89: %s", a.ICCID)
		assert.Contains(t, []int{19, 20}, len(a.ICCID))
		for _, r := range a.ICCID {
			assert.True(t, r >= '0' && r <= '9', "ICCID must be numeric: %s", a.ICCID)
		}
	}
}

func TestGenerateActivations_CountPerQuantity(t *testing.T) {
	assert.Len(t, GenerateActivations(3), 3)
	assert.Len(t, GenerateActivations(1), 1)
	// A non-positive quantity still yields one activation.
	assert.Len(t, GenerateActivations(0), 1)
}
