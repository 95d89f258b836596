package dossier_test

import (
	"testing"

	"github.com/9seconds/ipdossier/dossier"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
)

func TestValuePresent(t *testing.T) {
	testData := map[string]bool{
		`null`:      false,
		`""`:        false,
		`[]`:        false,
		`{}`:        false,
		`"US"`:      true,
		`0`:         true,
		`false`:     true,
		`["en"]`:    true,
		`{"a": 1}`:  true,
		`-76.0126`:  true,
		`"0"`:       true,
		`"null"`:    true,
		`[null, 1]`: true,
	}

	for raw, expected := range testData {
		raw := raw
		expected := expected

		t.Run(raw, func(t *testing.T) {
			value := dossier.Value{}

			assert.NoError(t, jsoniter.UnmarshalFromString(raw, &value))
			assert.Equal(t, expected, value.Present())
		})
	}
}

func TestValueString(t *testing.T) {
	testData := map[string]string{
		`null`:          "",
		`"Moscow"`:      "Moscow",
		`0`:             "0",
		`15169`:         "15169",
		`37.751`:        "37.751",
		`327167434`:     "327167434",
		`true`:          "Yes",
		`false`:         "No",
		`["en", "es"]`:  "en, es",
		`["", "fr", 1]`: "fr, 1",
		`{"a": 1}`:      `{"a":1}`,
	}

	for raw, expected := range testData {
		raw := raw
		expected := expected

		t.Run(raw, func(t *testing.T) {
			value := dossier.Value{}

			assert.NoError(t, jsoniter.UnmarshalFromString(raw, &value))
			assert.Equal(t, expected, value.String())
		})
	}
}

func TestValueBool(t *testing.T) {
	testData := map[string]bool{
		`null`:    false,
		`true`:    true,
		`false`:   false,
		`1`:       true,
		`0`:       false,
		`"true"`:  true,
		`"false"`: false,
		`""`:      false,
	}

	for raw, expected := range testData {
		raw := raw
		expected := expected

		t.Run(raw, func(t *testing.T) {
			value := dossier.Value{}

			assert.NoError(t, jsoniter.UnmarshalFromString(raw, &value))
			assert.Equal(t, expected, value.Bool())
		})
	}
}

func TestValueInStruct(t *testing.T) {
	data := struct {
		City    dossier.Value `json:"city"`
		Missing dossier.Value `json:"missing"`
	}{}

	assert.NoError(t, jsoniter.UnmarshalFromString(`{"city": "Berlin"}`, &data))
	assert.Equal(t, "Berlin", data.City.String())
	assert.False(t, data.Missing.Present())
}

func TestValueBadJSON(t *testing.T) {
	value := dossier.Value{}

	assert.Error(t, value.UnmarshalJSON([]byte(`{[`)))
}
