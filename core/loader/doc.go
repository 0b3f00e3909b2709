// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which exposes its name, whether it
// is enabled, and a Load hook that registers its routes.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features, in registration order, via LoadAll()
package loader
