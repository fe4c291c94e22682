// Package fhirtext renders FHIR demographic data as human-readable text.
//
// FHIR leaves much of the interpretation of a name or an address to the data
// itself (uses, types, prefixes, periods), so displaying a Patient on a screen
// or a printout takes the same repetitive code every time. The functions here
// take the R4 models of [github.com/zorgbijjou/golang-fhir-models] and return
// one string per list of values.
//
// # Styles
//
// Every renderer takes a [Style]:
//
//   - [Plain] — lines end in "\n" and are indented with a tab
//   - [HTML] — lines end in "<br>\n", indents are four &nbsp; and field values
//     are escaped; the result is a fragment to embed in a container element
//
// # Names
//
// [HumanNames] renders one line per name. The [Order] selects the layout:
//
//	Hart  III, Dr. Julia     // LastFirst
//	Dr. Julia  Hart  III     // Natural
//
// # Addresses and Telecoms
//
// [Addresses] renders a "<type> <use>:" header per address followed by its
// street lines. [Telecoms] renders a "<system>:" header per contact point
// followed by its value; url contact points become anchors in [HTML] style.
//
// # References
//
// [ToReference] builds a literal reference "Type/id" to a [Resource]; only a
// resource without a type is rejected. Use
// [ResourceOf] to read the type and id of any JSON resource.
//
// # Records, Bundles and Paging
//
// [ParseRecord] and [BundleRecords] decode the demographic fields of JSON
// resources into a [Record]. [PageLinks] reads the _page and _count of the
// paging links of a searchset Bundle. [NarrativeText] turns a resource's
// XHTML narrative into plain text.
//
// # Errors
//
// Rendering never fails on absent fields: they are left out. Passing a nil
// list is the only input error. The package exports sentinel errors for
// programmatic handling:
//
//   - [ErrNilInput] — a required list or resource is nil
//   - [ErrUnsupportedStyle] — unknown style
//   - [ErrUnsupportedOrder] — unknown name order
//   - [ErrInvalidPageLink] — a paging link lacks a numeric _page or _count
//   - [ErrInvalidRecord] — malformed resource JSON
package fhirtext
