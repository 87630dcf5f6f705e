package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-semi/pkg/carrier"
	"github.com/edp1096/toy-semi/pkg/material"
)

func TestOperatingPoint(t *testing.T) {
	op := NewOP(carrier.Condition{Temp: 300, Donor: 1e16})
	require.NoError(t, op.Setup(material.Silicon()))
	require.NoError(t, op.Execute())

	results := op.GetResults()
	require.Len(t, results["TEMP"], 1)
	assert.Equal(t, 300.0, results["TEMP"][0])
	assert.InEpsilon(t, 1e16, results["N"][0], 0.01)
	assert.Equal(t, carrier.NType, op.Result().Type)
	assert.Equal(t, op.Result().Ni, results["NI"][0])
}

func TestOperatingPointReportsDomainError(t *testing.T) {
	op := NewOP(carrier.Condition{Temp: 0})
	require.NoError(t, op.Setup(material.Silicon()))

	err := op.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operating point error")
}

func TestTempSweep(t *testing.T) {
	ts := NewTempSweep(250, 450, 50, 1e15, 0)
	require.NoError(t, ts.Setup(material.Silicon()))
	require.NoError(t, ts.Execute())

	results := ts.GetResults()
	require.Len(t, results["TEMP"], 5)
	assert.Equal(t, 250.0, results["TEMP"][0])
	assert.Equal(t, 450.0, results["TEMP"][4])

	// ni grows with temperature, Eg shrinks.
	for i := 1; i < len(results["NI"]); i++ {
		assert.Greater(t, results["NI"][i], results["NI"][i-1])
		assert.Less(t, results["EG"][i], results["EG"][i-1])
	}
}

func TestTempSweepRejectsNonPositiveStep(t *testing.T) {
	assert.Panics(t, func() { NewTempSweep(250, 450, 0, 0, 0) })
	assert.Panics(t, func() { NewTempSweep(250, 450, -10, 0, 0) })
}

func TestDopingSweep(t *testing.T) {
	ds, err := NewDopingSweep("nd", 1e12, 1e18, 2, 300, 0, 0)
	require.NoError(t, err)
	require.NoError(t, ds.Setup(material.Silicon()))
	require.NoError(t, ds.Execute())

	results := ds.GetResults()
	require.Len(t, results["SWEEP"], 13) // 6 decades, 2 points per decade
	assert.InEpsilon(t, 1e12, results["SWEEP"][0], 1e-9)
	assert.InEpsilon(t, 1e18, results["SWEEP"][12], 1e-9)

	// Electron count and Fermi offset never drop as donors increase.
	for i := 1; i < len(results["N"]); i++ {
		assert.GreaterOrEqual(t, results["N"][i], results["N"][i-1])
		assert.GreaterOrEqual(t, results["EF"][i], results["EF"][i-1])
	}
}

func TestDopingSweepAcceptorVariable(t *testing.T) {
	ds, err := NewDopingSweep("na", 1e14, 1e16, 1, 300, 0, 0)
	require.NoError(t, err)
	require.NoError(t, ds.Setup(material.Silicon()))
	require.NoError(t, ds.Execute())

	results := ds.GetResults()
	for i := range results["EF"] {
		assert.Less(t, results["EF"][i], 0.0)
		assert.Greater(t, results["P"][i], results["N"][i])
	}
}

func TestDopingSweepValidation(t *testing.T) {
	_, err := NewDopingSweep("nx", 1e12, 1e18, 2, 300, 0, 0)
	assert.Error(t, err)

	_, err = NewDopingSweep("nd", 0, 1e18, 2, 300, 0, 0)
	assert.Error(t, err)

	_, err = NewDopingSweep("nd", 1e18, 1e12, 2, 300, 0, 0)
	assert.Error(t, err)

	_, err = NewDopingSweep("nd", 1e12, 1e18, 0, 300, 0, 0)
	assert.Error(t, err)
}
