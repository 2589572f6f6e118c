//go:build linux

package netinfo

import "github.com/vishvananda/netlink"

// defaultGateways walks the kernel routing table over netlink and picks the
// first default route of each family. Per-family failures are ignored
// independently so a host with broken IPv6 still reports its IPv4 gateway.
func defaultGateways(_ Runner) map[string]Gateway {
	gws := make(map[string]Gateway)

	links, err := netlink.LinkList()
	if err != nil {
		return gws
	}
	names := make(map[int]string, len(links))
	for _, l := range links {
		names[l.Attrs().Index] = l.Attrs().Name
	}

	families := []struct {
		family int
		tag    string
	}{
		{netlink.FAMILY_V4, "IPv4"},
		{netlink.FAMILY_V6, "IPv6"},
	}
	for _, f := range families {
		routes, err := netlink.RouteList(nil, f.family)
		if err != nil {
			continue
		}
		for _, r := range routes {
			if !isDefaultRoute(r) || r.Gw == nil {
				continue
			}
			gws[f.tag] = Gateway{IP: r.Gw.String(), Interface: names[r.LinkIndex]}
			break
		}
	}
	return gws
}

// isDefaultRoute treats both a nil Dst and a zero-length prefix as the
// default route; netlink reports either depending on kernel version.
func isDefaultRoute(r netlink.Route) bool {
	if r.Dst == nil {
		return true
	}
	ones, _ := r.Dst.Mask.Size()
	return ones == 0
}
