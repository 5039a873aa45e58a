package deepskylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentTypeBijection(t *testing.T) {
	for code := 0; code < len(instrumentTypeNames); code++ {
		it, err := InstrumentTypeFromInt(code)
		require.NoError(t, err)

		back, err := ParseInstrumentType(it.String())
		require.NoError(t, err, "name %q", it.String())
		assert.Equal(t, it, back)
		assert.Equal(t, code, int(back))
	}
}

func TestInstrumentTypeNames(t *testing.T) {
	tests := []struct {
		it   InstrumentType
		name string
	}{
		{NakedEye, "Naked Eye"},
		{Binoculars, "Binoculars"},
		{Refractor, "Refractor"},
		{Reflector, "Reflector"},
		{Finderscope, "Finderscope"},
		{OtherInstrument, "Other"},
		{Cassegrain, "Cassegrain"},
		{Kutter, "Kutter"},
		{Maksutov, "Maksutov"},
		{SchmidtCassegrain, "Schmidt Cassegrain"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.it.String())
	}
}

func TestInstrumentTypeLookupMisses(t *testing.T) {
	t.Run("unrecognized name", func(t *testing.T) {
		_, err := ParseInstrumentType("Dobsonian")
		var ute *UnknownInstrumentTypeError
		require.ErrorAs(t, err, &ute)
		assert.Equal(t, "Dobsonian", ute.Name)
		assert.Contains(t, err.Error(), "Dobsonian")
	})

	t.Run("out-of-range codes", func(t *testing.T) {
		for _, code := range []int{-1, 10, 42} {
			_, err := InstrumentTypeFromInt(code)
			var ute *UnknownInstrumentTypeError
			require.ErrorAs(t, err, &ute, "code %d", code)
			assert.Equal(t, code, ute.Code)
		}
	})
}

func TestMagnifications(t *testing.T) {
	dobson := Instrument{ID: 1, Name: "18in Obsession", Type: Reflector, Diameter: 457, FD: 4.5}

	eyepieces := map[int]Eyepiece{
		3: {ID: 3, Name: "Nagler 20mm", FocalLength: 20, Active: true},
		1: {ID: 1, Name: "Ethos 10mm", FocalLength: 10, Active: true},
		2: {ID: 2, Name: "Plossl 5mm", FocalLength: 5, Active: false},
	}

	t.Run("one magnification per active eyepiece, ordered by ID", func(t *testing.T) {
		got := Magnifications(dobson, eyepieces)
		require.Len(t, got, 2)
		assert.InDelta(t, 205.65, got[0], 1e-9) // eyepiece 1: 457*4.5/10
		assert.InDelta(t, 102.825, got[1], 1e-9) // eyepiece 3: 457*4.5/20
	})

	t.Run("fixed magnification wins", func(t *testing.T) {
		fixed := 66.0
		binoculars := Instrument{ID: 2, Name: "Fujinon 25x150", Type: Binoculars, FixedMagnification: &fixed}
		binoculars.FixedMagnification = &fixed

		got := Magnifications(binoculars, eyepieces)
		assert.Equal(t, []float64{66.0}, got)
	})

	t.Run("no active eyepieces", func(t *testing.T) {
		got := Magnifications(dobson, map[int]Eyepiece{
			2: {ID: 2, FocalLength: 5, Active: false},
		})
		assert.Empty(t, got)
	})

	t.Run("zero focal length skipped", func(t *testing.T) {
		got := Magnifications(dobson, map[int]Eyepiece{
			1: {ID: 1, FocalLength: 0, Active: true},
		})
		assert.Empty(t, got)
	})
}

func TestEyepieceActiveDecoding(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"boolean true", `{"id":1,"name":"Ethos","focal_length_mm":13,"eyepieceactive":true}`, true},
		{"boolean false", `{"id":1,"name":"Ethos","focal_length_mm":13,"eyepieceactive":false}`, false},
		{"integer one", `{"id":1,"name":"Ethos","focal_length_mm":13,"eyepieceactive":1}`, true},
		{"integer zero", `{"id":1,"name":"Ethos","focal_length_mm":13,"eyepieceactive":0}`, false},
		{"missing", `{"id":1,"name":"Ethos","focal_length_mm":13}`, false},
		{"null", `{"id":1,"name":"Ethos","focal_length_mm":13,"eyepieceactive":null}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := decodeItem[Eyepiece]("eyepieces", []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ep.Active)
			assert.Equal(t, 13.0, ep.FocalLength)
		})
	}
}

func TestDecodeItemKeepsOpaqueAttributes(t *testing.T) {
	body := `{"id":7,"name":"8in Dobsonian","diameter":203,"fd":6,"type":3,"observer":"alice","showname":1}`

	inst, err := decodeItem[Instrument]("instrument", []byte(body))
	require.NoError(t, err)

	assert.Equal(t, 7, inst.ID)
	assert.Equal(t, Reflector, inst.Type)
	assert.Nil(t, inst.FixedMagnification)
	// Unmodelled fields survive verbatim.
	assert.JSONEq(t, `"alice"`, string(inst.Attributes["observer"]))
	assert.JSONEq(t, `1`, string(inst.Attributes["showname"]))
}
