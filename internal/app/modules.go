package app

import (
	"github.com/specialistvlad/labpatrol/internal/registry"
	"github.com/specialistvlad/labpatrol/modules/guard_patrol"
)

// coreModules is the definitive list of all solvers that are compiled into
// the labpatrol binary.
var coreModules = []registry.Module{
	&guard_patrol.Module{},
}
