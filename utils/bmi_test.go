package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	_, err := CalculateBMI(0, 70)
	assert.Error(t, err)
	_, err = CalculateBMI(175, -1)
	assert.Error(t, err)
	_, err = CalculateBMI(300, 70)
	assert.Error(t, err)
	_, err = CalculateBMI(175, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Abaixo do peso", BMICategory(17.0))
	assert.Equal(t, "Peso normal", BMICategory(22.0))
	assert.Equal(t, "Sobrepeso", BMICategory(27.5))
	assert.Equal(t, "Obesidade grau I", BMICategory(32.0))
	assert.Equal(t, "Obesidade grau II", BMICategory(37.0))
	assert.Equal(t, "Obesidade grau III", BMICategory(42.0))
}
