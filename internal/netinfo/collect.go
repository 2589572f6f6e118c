package netinfo

// Snapshot is the complete set of network facts collected by one run.
// Built fresh per collection, read-only afterwards, discarded after
// display.
type Snapshot struct {
	Routes     RouteResult
	Interfaces map[string]InterfaceDetail
	ARP        string
	DNS        string
	Gateways   map[string]Gateway
}

// Analyzer collects one Snapshot of host network state. The collaborators
// are fields so tests can substitute fakes; NewAnalyzer wires the real
// ones.
type Analyzer struct {
	Platform   Platform
	Runner     Runner
	Interfaces func() (map[string]InterfaceDetail, error)
	Gateways   func(Runner) map[string]Gateway
}

func NewAnalyzer(p Platform) *Analyzer {
	return &Analyzer{
		Platform:   p,
		Runner:     NewShellRunner(p),
		Interfaces: Interfaces,
		Gateways:   Gateways,
	}
}

// CollectAll gathers routes, interfaces, ARP, DNS and gateways, in that
// order. A failing step contributes its error text or an empty map and the
// remaining steps still run; a partial snapshot is the normal outcome on a
// host missing some capability.
func (a *Analyzer) CollectAll() *Snapshot {
	s := &Snapshot{}
	s.Routes = NewRouteService(a.Platform, a.Runner).GetRoutingTable()
	ifaces, err := a.Interfaces()
	if err != nil {
		ifaces = map[string]InterfaceDetail{}
	}
	s.Interfaces = ifaces
	s.ARP = ARPTable(a.Platform, a.Runner)
	s.DNS = DNSInfo(a.Platform, a.Runner)
	s.Gateways = a.Gateways(a.Runner)
	return s
}
