//go:build windows

package netinfo

// defaultGateways reads the active 0.0.0.0 route from `route print`.
// The route command output format has been stable across Windows versions.
// IPv4 only.
func defaultGateways(runner Runner) map[string]Gateway {
	gws := make(map[string]Gateway)
	out, err := runner.Run("route print 0.0.0.0")
	if err != nil {
		return gws
	}
	if gw, ok := parseWindowsGateway(out); ok {
		gws["IPv4"] = gw
	}
	return gws
}
