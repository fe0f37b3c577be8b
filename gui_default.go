//go:build !console

package main

import (
	"fmt"

	webview "github.com/webview/webview_go"
)

// runEmbeddedUI starts the web server and opens an embedded browser window
func runEmbeddedUI(configFile, addr string) error {
	config, logger, err := loadRuntime(configFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// The window always talks to a loopback server on a free port unless overridden
	if addr == "" {
		addr = "localhost:0"
	}
	ws := NewWebServer(config, addr, logger)

	// Start server and get URL
	url, cleanup, err := ws.StartForEmbedded()
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	defer cleanup()

	// Dev tools follow logging.development
	w := webview.New(config.Logging.Development)
	defer w.Destroy()

	w.SetTitle("助成金シミュレーター")
	w.SetSize(1100, 860, webview.HintNone)
	w.Navigate(url)

	// Run blocks until window is closed
	w.Run()

	return nil
}

// runGUI starts the graphical user interface (uses embedded browser)
func runGUI(configFile, addr string) error {
	return runEmbeddedUI(configFile, addr)
}
