// Package forms provides a choice field whose options are loaded over htmx
// instead of being fixed at render time.
//
// A DynamicChoiceField configured with a choice URL renders a select element
// carrying declarative htmx attributes: the client fetches fresh options from
// the URL whenever one of the field's dependency inputs changes, and swaps
// them in place. Dependent fields chain, so country → region → city cascades
// need no custom JavaScript:
//
//	region := forms.NewDynamicChoiceField("region",
//		forms.WithChoiceURL("/choices/regions"),
//		forms.WithDependencyFields("#id_country"),
//	)
//
// Validation checks a submitted value against the currently known choices.
// Because choices arrive after render, the full list is usually not known
// server-side; by default the field admits unknown values as new (value,
// value) choices. Disable with WithAllowNewChoices(false) to get a hard
// validation error instead — then the complete choice list must be supplied
// up front.
//
// Fields are request-scoped: construct them per request (admitted choices
// stay on the field instance).
package forms
