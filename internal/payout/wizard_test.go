// File: internal/payout/wizard_test.go
package payout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const providerURL = "https://connect.example.com/express"

func toStep(t *testing.T, step Step) *Wizard {
	t.Helper()
	w := NewWizard(providerURL)
	if step == StepInitial {
		return w
	}
	require.NoError(t, w.Begin())
	if step == StepCountry {
		return w
	}
	require.NoError(t, w.SelectCountry("Canada"))
	require.NoError(t, w.Next())
	if step == StepMethod {
		return w
	}
	require.NoError(t, w.Continue())
	return w
}

func TestWizard_HappyPath(t *testing.T) {
	w := toStep(t, StepStripe)
	assert.Equal(t, State{Step: StepStripe, SelectedCountry: "Canada"}, w.State())

	url, err := w.HandOff()
	require.NoError(t, err)
	assert.Equal(t, providerURL, url)
	assert.Equal(t, StepInitial, w.State().Step)
}

func TestWizard_NextRequiresCountry(t *testing.T) {
	w := toStep(t, StepCountry)
	assert.True(t, errors.Is(w.Next(), ErrCountryRequired))
	assert.Equal(t, StepCountry, w.State().Step)

	assert.True(t, errors.Is(w.SelectCountry("Atlantis"), ErrUnsupportedCountry))
	assert.True(t, errors.Is(w.Next(), ErrCountryRequired))
}

func TestWizard_CloseFromAnyStep(t *testing.T) {
	for _, step := range []Step{StepInitial, StepCountry, StepMethod, StepStripe} {
		t.Run(string(step), func(t *testing.T) {
			w := toStep(t, step)
			w.Close()
			assert.Equal(t, StepInitial, w.State().Step)
			require.NoError(t, w.Begin())
		})
	}
}

func TestWizard_Back(t *testing.T) {
	w := toStep(t, StepStripe)
	require.NoError(t, w.Back())
	assert.Equal(t, StepMethod, w.State().Step)
	require.NoError(t, w.Back())
	assert.Equal(t, StepCountry, w.State().Step)
	require.NoError(t, w.Back())
	assert.Equal(t, StepInitial, w.State().Step)
	assert.True(t, errors.Is(w.Back(), ErrInvalidStep))
}

func TestWizard_OutOfOrder(t *testing.T) {
	w := NewWizard(providerURL)
	assert.True(t, errors.Is(w.Continue(), ErrInvalidStep))
	assert.True(t, errors.Is(w.SelectCountry("Canada"), ErrInvalidStep))
	_, err := w.HandOff()
	assert.True(t, errors.Is(err, ErrInvalidStep))
}

func TestListCountries(t *testing.T) {
	all := ListCountries("")
	assert.Len(t, all.Popular, 4)
	assert.Equal(t, "Albania", all.All[0].Name)

	united := ListCountries("UNITED")
	assert.Len(t, united.Popular, 2)
	assert.Len(t, united.All, 3)

	assert.True(t, IsSupported("India"))
	assert.True(t, IsSupported("Côte d'Ivoire"))
	assert.False(t, IsSupported("india"))
}
