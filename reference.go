package fhirtext

import (
	"encoding/json"
	"fmt"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/caramel/to"
	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// Resource identifies a FHIR resource by its type and logical id.
type Resource struct {
	Type string `json:"resourceType"`
	ID   string `json:"id"`
}

// String returns the relative reference "Type/id".
func (r Resource) String() string {
	return r.Type + "/" + r.ID
}

// ResourceOf reads the resourceType and id of a raw JSON resource.
func ResourceOf(data []byte) (Resource, error) {
	var res Resource
	if err := json.Unmarshal(data, &res); err != nil {
		return Resource{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if res.Type == "" {
		return Resource{}, fmt.Errorf("%w: missing resourceType", ErrInvalidRecord)
	}
	return res, nil
}

// ToReference returns a literal reference to res. The display text defaults
// to the resource type when empty. The reference is not resolved: the target
// may not exist on any server. A resource without an id, one that was never
// stored, yields "Type/".
func ToReference(res Resource, display string) (fhir.Reference, error) {
	if res.Type == "" {
		return fhir.Reference{}, fmt.Errorf("%w: resource", ErrNilInput)
	}
	if display == "" {
		display = res.Type
	}
	return fhir.Reference{
		Reference: to.Ptr(res.String()),
		Type:      to.Ptr(res.Type),
		Display:   to.Ptr(display),
	}, nil
}
