// Package config defines the format-agnostic configuration model for the
// catalog host, along with the Loader interface for reading it from a
// concrete format. The HCL implementation lives in internal/hclconf.
package config
