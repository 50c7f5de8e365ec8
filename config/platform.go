package config

// PlatformConfig describes capabilities of the build target
type PlatformConfig struct {
	// QuitSupported is false on the web target, where the process cannot exit itself.
	QuitSupported bool
}

// Platform is the global platform configuration
var Platform PlatformConfig

func init() {
	Platform = PlatformConfig{
		QuitSupported: quitSupported,
	}
}
