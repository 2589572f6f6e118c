package main

import (
	"fmt"
	"os"

	"github.com/P70-ops/network-analyzer/internal/netinfo"
	"github.com/P70-ops/network-analyzer/internal/ui"
)

func main() {
	if err := checkCapabilities(); err != nil {
		fmt.Fprintln(os.Stderr, "Missing capability:", err)
		os.Exit(1)
	}
	platform := netinfo.DetectPlatform()
	analyzer := netinfo.NewAnalyzer(platform)
	snapshot := analyzer.CollectAll()
	fmt.Print(ui.RenderSnapshot(snapshot))
}

// checkCapabilities verifies up front that interface enumeration works;
// every other section degrades to an inline message, but without interface
// access the report is not worth printing.
func checkCapabilities() error {
	if _, err := netinfo.Interfaces(); err != nil {
		return fmt.Errorf("interface enumeration unavailable: %w", err)
	}
	return nil
}
