package deepskylog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// InstrumentType is the closed enumeration of instrument kinds used by the
// DeepskyLog service. The integer values are the service's wire codes.
type InstrumentType int

const (
	NakedEye InstrumentType = iota
	Binoculars
	Refractor
	Reflector
	Finderscope
	OtherInstrument
	Cassegrain
	Kutter
	Maksutov
	SchmidtCassegrain
)

var instrumentTypeNames = [...]string{
	NakedEye:          "Naked Eye",
	Binoculars:        "Binoculars",
	Refractor:         "Refractor",
	Reflector:         "Reflector",
	Finderscope:       "Finderscope",
	OtherInstrument:   "Other",
	Cassegrain:        "Cassegrain",
	Kutter:            "Kutter",
	Maksutov:          "Maksutov",
	SchmidtCassegrain: "Schmidt Cassegrain",
}

// String returns the human-readable name for a valid instrument type. For
// values outside the enumeration it returns a diagnostic placeholder; use
// [InstrumentTypeFromInt] first when the code comes from untrusted input.
func (t InstrumentType) String() string {
	if t < 0 || int(t) >= len(instrumentTypeNames) {
		return fmt.Sprintf("InstrumentType(%d)", int(t))
	}
	return instrumentTypeNames[t]
}

// InstrumentTypeFromInt validates a wire code and returns the corresponding
// instrument type. Codes outside the enumeration fail with
// [UnknownInstrumentTypeError]; there is no silent default.
func InstrumentTypeFromInt(code int) (InstrumentType, error) {
	if code < 0 || code >= len(instrumentTypeNames) {
		return 0, &UnknownInstrumentTypeError{Code: code}
	}
	return InstrumentType(code), nil
}

// ParseInstrumentType maps a human-readable name back to its instrument type.
// ParseInstrumentType and [InstrumentType.String] form a bijection over the
// enumeration. Unrecognized names fail with [UnknownInstrumentTypeError].
func ParseInstrumentType(name string) (InstrumentType, error) {
	for i, n := range instrumentTypeNames {
		if n == name {
			return InstrumentType(i), nil
		}
	}
	return 0, &UnknownInstrumentTypeError{Name: name, Code: -1}
}

// Instrument is a telescope or other observing instrument as defined by a
// DeepskyLog user. Diameter is in mm and FD is the focal ratio.
// FixedMagnification is nil for instruments magnified by interchangeable
// eyepieces. Fields not modelled here are retained verbatim in Attributes.
type Instrument struct {
	ID                 int            `json:"id"`
	Name               string         `json:"name"`
	Type               InstrumentType `json:"type"`
	Diameter           float64        `json:"diameter"`
	FD                 float64        `json:"fd"`
	FixedMagnification *float64       `json:"fixedMagnification"`

	Attributes map[string]json.RawMessage `json:"-"`
}

func (i *Instrument) setAttributes(a map[string]json.RawMessage) { i.Attributes = a }

// Eyepiece is an eyepiece record. FocalLength is in mm; Active reports
// whether the user currently has the eyepiece in use.
type Eyepiece struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	FocalLength float64 `json:"focal_length_mm"`
	Active      bool    `json:"-"`

	Attributes map[string]json.RawMessage `json:"-"`
}

func (e *Eyepiece) setAttributes(a map[string]json.RawMessage) { e.Attributes = a }

// UnmarshalJSON decodes an eyepiece, accepting both boolean and 0/1 integer
// encodings for the eyepieceactive flag (older rows of the PHP backend use
// integers).
func (e *Eyepiece) UnmarshalJSON(data []byte) error {
	type alias Eyepiece
	aux := struct {
		*alias
		Active json.RawMessage `json:"eyepieceactive"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Active = truthy(aux.Active)
	return nil
}

// Lens is a Barlow or focal reducer record. Factor multiplies the
// instrument's focal length.
type Lens struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	FocalLength float64 `json:"focal_length_mm"`
	Factor      float64 `json:"factor"`

	Attributes map[string]json.RawMessage `json:"-"`
}

func (l *Lens) setAttributes(a map[string]json.RawMessage) { l.Attributes = a }

// Filter is an optical filter record. Type is the service's filter-kind code,
// passed through untouched.
type Filter struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`

	Attributes map[string]json.RawMessage `json:"-"`
}

func (f *Filter) setAttributes(a map[string]json.RawMessage) { f.Attributes = a }

// attrSetter lets the response decoder hand each record its raw attribute
// map without knowing the concrete type.
type attrSetter interface {
	setAttributes(map[string]json.RawMessage)
}

func truthy(raw json.RawMessage) bool {
	switch s := string(bytes.TrimSpace(raw)); s {
	case "", "null", "false", "0":
		return false
	case "true":
		return true
	default:
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return n != 0
		}
		return false
	}
}

// Magnifications derives the magnifications available for an instrument.
// Instruments with a fixed magnification yield exactly that value; otherwise
// each active eyepiece contributes diameter*fd/focalLength. Results are
// ordered by eyepiece ID.
func Magnifications(inst Instrument, eyepieces map[int]Eyepiece) []float64 {
	if inst.FixedMagnification != nil && *inst.FixedMagnification != 0 {
		return []float64{*inst.FixedMagnification}
	}

	ids := make([]int, 0, len(eyepieces))
	for id := range eyepieces {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var magnifications []float64
	for _, id := range ids {
		ep := eyepieces[id]
		if !ep.Active || ep.FocalLength == 0 {
			continue
		}
		magnifications = append(magnifications, inst.Diameter*inst.FD/ep.FocalLength)
	}
	return magnifications
}
