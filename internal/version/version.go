// Package version reports the asciimock build version.
package version

import (
	"runtime/debug"
	"sync"
)

// Get returns the module version from build info, or "development" when
// the binary was built without module information.
var Get = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "development"
})
