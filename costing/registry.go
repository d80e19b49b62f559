package costing

import (
	"sync"

	"github.com/prosimlab/unitops"
)

var (
	registryMutex sync.Mutex
	registry      = make(map[string]Correlation)
)

// Register attaches a correlation to a unit kind. It is meant to be called
// from package init functions, once per kind. Registering an invalid
// correlation or the same kind twice panics with a ConfigError.
func Register(kind string, c Correlation) {
	c.MustBeValid()

	registryMutex.Lock()
	defer registryMutex.Unlock()

	if _, dup := registry[kind]; dup {
		unitops.PanicConfigErrorf(
			"cost correlation for unit kind %s is registered twice", kind)
	}

	registry[kind] = c
}

// Lookup returns the correlation attached to a unit kind. Units without a
// correlation are legal; they simply are not priced.
func Lookup(kind string) (Correlation, bool) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	c, found := registry[kind]

	return c, found
}
