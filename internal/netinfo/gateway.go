package netinfo

import "strings"

// Gateway is a default-gateway binding: the next-hop address and the
// interface traffic leaves through.
type Gateway struct {
	IP        string
	Interface string
}

// Gateways returns the host's default gateways keyed by address family
// ("IPv4", "IPv6"). A machine with no default route is a normal state, so
// failures yield an empty map rather than an error. The runner is used on
// platforms that discover the gateway through a route command; the Linux
// implementation reads netlink directly and ignores it.
func Gateways(runner Runner) map[string]Gateway {
	return defaultGateways(runner)
}

// parseRouteGet reads the "gateway:" and "interface:" lines of BSD
// `route -n get default` output.
func parseRouteGet(output string) (Gateway, bool) {
	var gw Gateway
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		switch fields[0] {
		case "gateway:":
			gw.IP = fields[1]
		case "interface:":
			gw.Interface = fields[1]
		}
	}
	return gw, gw.IP != ""
}

// parseWindowsGateway picks the gateway and interface address out of the
// first active 0.0.0.0 row of `route print 0.0.0.0` output.
func parseWindowsGateway(output string) (Gateway, bool) {
	for _, r := range ParseWindowsRoutes(output) {
		if r.Gateway != "" {
			return Gateway{IP: r.Gateway, Interface: r.Interface}, true
		}
	}
	return Gateway{}, false
}
