//go:build darwin

package netinfo

// defaultGateways asks the BSD route socket via the route command; macOS
// has no /proc/net/route to read. IPv4 only.
func defaultGateways(runner Runner) map[string]Gateway {
	gws := make(map[string]Gateway)
	out, err := runner.Run("route -n get default")
	if err != nil {
		return gws
	}
	if gw, ok := parseRouteGet(out); ok {
		gws["IPv4"] = gw
	}
	return gws
}
