//go:build console

package main

import "errors"

// errNoGUI is returned by console-only builds (-tags console)
var errNoGUI = errors.New("this build has no embedded window: run with -web to use the browser UI or -console for the terminal")

// runEmbeddedUI is a stub for console-only builds
func runEmbeddedUI(configFile, addr string) error {
	return errNoGUI
}

// runGUI is a stub for console-only builds
func runGUI(configFile, addr string) error {
	return errNoGUI
}
