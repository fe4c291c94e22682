package fhirtext

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		period *fhir.Period
		want   string
	}{
		"nil":        {period: nil, want: ""},
		"empty":      {period: &fhir.Period{}, want: ""},
		"start":      {period: &fhir.Period{Start: to.Ptr("2020")}, want: "2020"},
		"end":        {period: &fhir.Period{End: to.Ptr("2021")}, want: "2021"},
		"both":       {period: &fhir.Period{Start: to.Ptr("2020"), End: to.Ptr("2021")}, want: "2020 - 2021"},
		"empty text": {period: &fhir.Period{Start: to.Ptr(""), End: to.Ptr("2021")}, want: "2021"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, periodBounds(tt.period))
		})
	}
}

func TestCityLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Woburn, MA 01807", cityLine(fhir.Address{City: to.Ptr("Woburn"), State: to.Ptr("MA"), PostalCode: to.Ptr("01807")}))
	assert.Equal(t, "Woburn, 01807", cityLine(fhir.Address{City: to.Ptr("Woburn"), PostalCode: to.Ptr("01807")}))
	assert.Equal(t, "Woburn", cityLine(fhir.Address{City: to.Ptr("Woburn")}))
	assert.Equal(t, "", cityLine(fhir.Address{}))
}

func TestLabels(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "postal home", labels("postal", "home"))
	assert.Equal(t, "home", labels("", "home"))
	assert.Equal(t, "", labels("", ""))
}

func TestCodeNil(t *testing.T) {
	t.Parallel()
	var use *fhir.NameUse
	assert.Equal(t, "", code(use))
	assert.Equal(t, "maiden", code(to.Ptr(fhir.NameUseMaiden)))
}

func TestWriteNameError(t *testing.T) {
	t.Parallel()
	l, err := layoutFor(Plain)
	require.NoError(t, err)
	err = writeName(&errWriterInternal{}, l, LastFirst, fhir.HumanName{Family: to.Ptr("Hart")})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteAddressError(t *testing.T) {
	t.Parallel()
	l, err := layoutFor(Plain)
	require.NoError(t, err)
	err = writeAddress(&errWriterInternal{}, l, fhir.Address{Line: []string{"1 Main St."}})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteContactError(t *testing.T) {
	t.Parallel()
	l, err := layoutFor(HTML)
	require.NoError(t, err)
	err = writeContact(&errWriterInternal{}, l, fhir.ContactPoint{Value: to.Ptr("x")})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestOneOrMany(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw     string
		want    int
		wantErr bool
	}{
		"absent": {raw: "", want: 0},
		"null":   {raw: "null", want: 0},
		"object": {raw: `{"city":"Woburn"}`, want: 1},
		"array":  {raw: ` [{"city":"Woburn"},{"city":"Boston"}]`, want: 2},
		"broken": {raw: `{"city":`, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := oneOrMany[fhir.Address](json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}
