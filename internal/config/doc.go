// Package config defines the format-agnostic puzzle manifest model for the
// application, along with the Loader interface for reading manifests from
// various sources.
//
// The `config.Model` is the single source of truth for the `executor`
// package. Concrete loaders, such as for HCL and YAML, are provided in
// separate packages.
package config
