package fhirtext

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"
)

// PageLink is a paging link of a searchset Bundle. To fetch the page it
// points to, pass Page as the _page search parameter.
type PageLink struct {
	Relation string `json:"relation" yaml:"relation"`
	Page     int    `json:"page" yaml:"page"`
	Count    int    `json:"count" yaml:"count"`
}

// NewPageLink parses the _page and _count query parameters of a Bundle link.
func NewPageLink(link fhir.BundleLink) (PageLink, error) {
	u, err := url.Parse(link.Url)
	if err != nil {
		return PageLink{}, fmt.Errorf("%w: %w", ErrInvalidPageLink, err)
	}
	query := u.Query()
	page, err := queryInt(query, "_page")
	if err != nil {
		return PageLink{}, err
	}
	count, err := queryInt(query, "_count")
	if err != nil {
		return PageLink{}, err
	}
	return PageLink{Relation: link.Relation, Page: page, Count: count}, nil
}

// PageLinks converts every link of a Bundle.
func PageLinks(bundle fhir.Bundle) ([]PageLink, error) {
	links := make([]PageLink, 0, len(bundle.Link))
	for _, link := range bundle.Link {
		pl, err := NewPageLink(link)
		if err != nil {
			return nil, fmt.Errorf("link %q: %w", link.Relation, err)
		}
		links = append(links, pl)
	}
	return links, nil
}

// String returns a human-readable description of the link.
func (p PageLink) String() string {
	return fmt.Sprintf("type: %s on page: %d with count: %d", p.Relation, p.Page, p.Count)
}

func queryInt(query url.Values, key string) (int, error) {
	v := query.Get(key)
	if v == "" {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidPageLink, key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPageLink, key, v)
	}
	return n, nil
}
