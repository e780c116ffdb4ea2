// Package forms defines the capability surfaces an extension implements to
// customize how a dataset or group type is validated, templated, and
// labeled, together with complete default implementations of each surface.
//
// The defaults serve two purposes: they are installed as the process-wide
// fallback when no extension claims an axis, and they are the delegate an
// extension form wraps when it only wants to override a subset of the
// behavior. Overriding works by composition, not by inheritance: a custom
// form holds a default by reference and forwards the methods it does not
// change.
package forms
