package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "латинский код", input: "en", want: "en"},
		{name: "кириллический код", input: "ру", want: "ру"},
		{name: "пустая строка", input: "", wantErr: true},
		{name: "одна буква", input: "e", wantErr: true},
		{name: "три буквы", input: "eng", wantErr: true},
		// длина считается в рунах, не в байтах
		{name: "многобайтовые руны", input: "日本", want: "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ParseCode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var lengthErr *CodeLengthError
				assert.ErrorAs(t, err, &lengthErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestCodeJSON(t *testing.T) {
	code, err := ParseCode("de")
	require.NoError(t, err)

	data, err := json.Marshal(code)
	require.NoError(t, err)
	assert.Equal(t, `"de"`, string(data))

	var decoded Code
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, code, decoded)
}

func TestCodeUnmarshalInvalid(t *testing.T) {
	var code Code
	err := json.Unmarshal([]byte(`"eng"`), &code)
	require.Error(t, err)
}

func TestLocationFromFloats(t *testing.T) {
	tests := []struct {
		name    string
		coords  []float64
		want    Location
		wantErr bool
	}{
		{name: "две координаты", coords: []float64{55.75, 37.61}, want: Location{Latitude: 55.75, Longitude: 37.61}},
		{name: "пустой срез", coords: nil, wantErr: true},
		{name: "одна координата", coords: []float64{55.75}, wantErr: true},
		{name: "три координаты", coords: []float64{1, 2, 3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LocationFromFloats(tt.coords)
			if tt.wantErr {
				var lengthErr *LocationLengthError
				assert.ErrorAs(t, err, &lengthErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc)
		})
	}
}
