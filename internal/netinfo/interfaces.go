package netinfo

import "net"

// InterfaceDetail describes an interface's primary IPv4 binding.
type InterfaceDetail struct {
	IP        string
	Netmask   string
	MAC       string // empty when the interface has no hardware address
	Broadcast string // "N/A" when the interface is not broadcast-capable
}

// Interfaces returns details for every interface carrying an IPv4 address;
// interfaces without one are omitted entirely. Enumeration failure is the
// only error path — a per-interface address error just skips that
// interface.
func Interfaces() (map[string]InterfaceDetail, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	details := make(map[string]InterfaceDetail)
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if d, ok := ipv4Detail(iface, addrs); ok {
			details[iface.Name] = d
		}
	}
	return details, nil
}

// ipv4Detail builds the detail record from the interface's first IPv4
// address. ok is false when the interface has no IPv4 address at all.
func ipv4Detail(iface net.Interface, addrs []net.Addr) (InterfaceDetail, bool) {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		ip4 := ipNet.IP.To4()
		if ip4 == nil {
			continue
		}
		return InterfaceDetail{
			IP:        ip4.String(),
			Netmask:   net.IP(ipNet.Mask).String(),
			MAC:       iface.HardwareAddr.String(),
			Broadcast: broadcastAddr(iface, ip4, ipNet.Mask),
		}, true
	}
	return InterfaceDetail{}, false
}

// broadcastAddr computes addr|^mask for broadcast-capable interfaces.
func broadcastAddr(iface net.Interface, ip4 net.IP, mask net.IPMask) string {
	if iface.Flags&net.FlagBroadcast == 0 || len(mask) != net.IPv4len {
		return "N/A"
	}
	bcast := make(net.IP, net.IPv4len)
	for i := range bcast {
		bcast[i] = ip4[i] | ^mask[i]
	}
	return bcast.String()
}
