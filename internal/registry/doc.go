// Package registry provides the central "glue" for the extension system.
//
// The Registry maps dataset and group type-strings to the form provider
// that governs them, across two independent axes (dataset types and
// group/organization types), each with its own fallback slot. It is
// populated once during startup by the enabled extension modules, queried
// many times per request, and reset only on full reconfiguration.
//
// Registration fails fast: a type-string with two owners or an axis with
// two claimed fallbacks is a configuration error that aborts startup, never
// a silent last-writer-wins. Lookups, by contrast, never fail — an unknown
// or absent type degrades to the axis fallback so request-serving code does
// not special-case missing types.
package registry
