// Package hcl_adapter provides the HCL implementation of the config.Loader
// interface. It is responsible for finding `.hcl` manifests, decoding their
// `puzzle` blocks and translating them into the format-agnostic
// config.Model. Attribute values are evaluated to cty values and converted
// to Go strings, so `part1 = 41` and `part1 = "41"` mean the same thing.
package hcl_adapter
