package app

import (
	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/specialistvlad/labpatrol/internal/hcl_adapter"
	"github.com/specialistvlad/labpatrol/internal/yaml_adapter"
)

// DefaultLoader reads HCL manifests first, then YAML ones.
func DefaultLoader() config.Loader {
	return config.NewMultiLoader(hcl_adapter.NewLoader(), yaml_adapter.NewLoader())
}
