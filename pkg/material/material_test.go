package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for name, want := range map[string]string{
		"si":        "Si",
		"Silicon":   "Si",
		"ge":        "Ge",
		"GaAs":      "GaAs",
		"germanium": "Ge",
	} {
		mat, err := ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, mat.Name)
	}

	_, err := ByName("unobtainium")
	assert.Error(t, err)
}

func TestPresetsArePhysical(t *testing.T) {
	for _, mat := range []Params{Silicon(), Germanium(), GalliumArsenide()} {
		assert.Greater(t, mat.Eg300, 0.0, mat.Name)
		assert.Greater(t, mat.Nc300, 0.0, mat.Name)
		assert.Greater(t, mat.Nv300, 0.0, mat.Name)
		assert.Less(t, mat.TempCoeff, 0.0, mat.Name)
	}
}

func TestPresetReturnsACopy(t *testing.T) {
	a := Silicon()
	a.Eg300 = 0.5

	b := Silicon()
	assert.Equal(t, 1.12, b.Eg300)
}
