package bootspec

import (
	"bytes"
	"encoding/json"

	"github.com/go-errors/errors"
)

// ErrMissingField is returned when a required bootspec field is absent.
var ErrMissingField = errors.New("missing required field")

type v1Document struct {
	System        *string   `json:"system"`
	Init          *string   `json:"init"`
	Kernel        *string   `json:"kernel"`
	KernelParams  *[]string `json:"kernelParams"`
	Label         *string   `json:"label"`
	Toplevel      *string   `json:"toplevel"`
	Initrd        *string   `json:"initrd"`
	InitrdSecrets *string   `json:"initrdSecrets"`
}

// Parse decodes a boot.json document.
func Parse(data []byte) (*BootSpec, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapPrefix(err, "invalid bootspec", 0)
	}
	return fromDocument(doc)
}

func fromDocument(doc map[string]json.RawMessage) (*BootSpec, error) {
	raw, ok := doc[V1Key]
	if !ok || isNull(raw) {
		return nil, errors.Errorf("%w: %s", ErrMissingField, V1Key)
	}

	var v1 v1Document
	if err := json.Unmarshal(raw, &v1); err != nil {
		return nil, errors.WrapPrefix(err, "invalid "+V1Key, 0)
	}

	required := []struct {
		name    string
		missing bool
	}{
		{"system", v1.System == nil},
		{"init", v1.Init == nil},
		{"kernel", v1.Kernel == nil},
		{"kernelParams", v1.KernelParams == nil},
		{"label", v1.Label == nil},
		{"toplevel", v1.Toplevel == nil},
	}
	for _, field := range required {
		if field.missing {
			return nil, errors.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	bs := &BootSpec{
		System:       *v1.System,
		Init:         *v1.Init,
		Kernel:       *v1.Kernel,
		KernelParams: *v1.KernelParams,
		Label:        *v1.Label,
		Toplevel:     *v1.Toplevel,
	}
	if v1.Initrd != nil {
		bs.Initrd = *v1.Initrd
	}
	if v1.InitrdSecrets != nil {
		bs.InitrdSecrets = *v1.InitrdSecrets
	}

	if raw, ok := doc[SpecialisationKey]; ok {
		specs, err := decodeSpecialisations(raw)
		if err != nil {
			return nil, err
		}
		bs.Specialisations = specs
	}

	return bs, nil
}

// decodeSpecialisations walks the specialisation object token by token so
// the declaration order survives decoding.
func decodeSpecialisations(raw json.RawMessage) ([]Specialisation, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.WrapPrefix(err, "invalid "+SpecialisationKey, 0)
	}
	if tok == nil {
		return nil, nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Errorf("%s must be an object", SpecialisationKey)
	}

	var specs []Specialisation
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.WrapPrefix(err, "invalid "+SpecialisationKey, 0)
		}
		name := tok.(string)

		var doc map[string]json.RawMessage
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.WrapPrefix(err, "specialisation "+name, 0)
		}

		bs, err := fromDocument(doc)
		if err != nil {
			return nil, errors.WrapPrefix(err, "specialisation "+name, 0)
		}
		specs = append(specs, Specialisation{Name: name, BootSpec: bs})
	}

	return specs, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
