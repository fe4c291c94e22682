package fhirtext

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Record holds the demographic fields of a person-like resource (Patient,
// Practitioner, RelatedPerson, Person) or an Organization/Location.
// Fields absent from the resource stay nil.
type Record struct {
	Resource
	Name    []fhir.HumanName
	Address []fhir.Address
	Telecom []fhir.ContactPoint
	Text    *fhir.Narrative
}

type rawRecord struct {
	Resource
	Name    json.RawMessage     `json:"name"`
	Address json.RawMessage     `json:"address"`
	Telecom []fhir.ContactPoint `json:"telecom"`
	Text    *fhir.Narrative     `json:"text"`
}

// ParseRecord decodes a JSON resource. Organization and Location carry their
// name as a plain string; it becomes the family of a single HumanName.
// Location carries a single address instead of a list.
func ParseRecord(data []byte) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if raw.Type == "" {
		return Record{}, fmt.Errorf("%w: missing resourceType", ErrInvalidRecord)
	}
	rec := Record{
		Resource: raw.Resource,
		Telecom:  raw.Telecom,
		Text:     raw.Text,
	}
	var err error
	if rec.Name, err = decodeNames(raw.Name); err != nil {
		return Record{}, fmt.Errorf("%w: %s name: %w", ErrInvalidRecord, raw.Type, err)
	}
	if rec.Address, err = oneOrMany[fhir.Address](raw.Address); err != nil {
		return Record{}, fmt.Errorf("%w: %s address: %w", ErrInvalidRecord, raw.Type, err)
	}
	return rec, nil
}

// BundleRecords decodes the resource of every entry in a Bundle. Entries
// without a resource are skipped.
func BundleRecords(data []byte) ([]Record, error) {
	bundle, err := fhir.UnmarshalBundle(data)
	if err != nil {
		return nil, fmt.Errorf("%w: bundle: %w", ErrInvalidRecord, err)
	}
	records := make([]Record, 0, len(bundle.Entry))
	for i, entry := range bundle.Entry {
		if len(entry.Resource) == 0 {
			continue
		}
		rec, err := ParseRecord(entry.Resource)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeNames(raw json.RawMessage) ([]fhir.HumanName, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, err
		}
		return []fhir.HumanName{{Family: &name}}, nil
	}
	return oneOrMany[fhir.HumanName](raw)
}

// oneOrMany decodes a JSON array or a single object into a slice. Absent and
// null values decode to nil.
func oneOrMany[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '[' {
		var many []T
		err := json.Unmarshal(raw, &many)
		return many, err
	}
	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}
