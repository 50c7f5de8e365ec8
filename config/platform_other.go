//go:build !js

package config

const quitSupported = true
