package netinfo

import "testing"

const routeGetFixture = `   route to: default
destination: default
       mask: default
    gateway: 192.168.1.1
  interface: en0
      flags: <UP,GATEWAY,DONE,STATIC,PRCLONING>
 recvpipe  sendpipe  ssthresh  rtt,msec    rttvar  hopcount      mtu     expire
       0         0         0         0         0         0      1500         0
`

func TestParseRouteGet(t *testing.T) {
	gw, ok := parseRouteGet(routeGetFixture)
	if !ok {
		t.Fatal("expected a gateway")
	}
	want := Gateway{IP: "192.168.1.1", Interface: "en0"}
	if gw != want {
		t.Errorf("parseRouteGet() = %+v, want %+v", gw, want)
	}
}

func TestParseRouteGetNoGateway(t *testing.T) {
	out := "   route to: default\ndestination: default\n"
	if _, ok := parseRouteGet(out); ok {
		t.Error("expected ok=false when no gateway line is present")
	}
}

func TestParseWindowsGateway(t *testing.T) {
	gw, ok := parseWindowsGateway(routePrintFixture)
	if !ok {
		t.Fatal("expected a gateway")
	}
	want := Gateway{IP: "192.168.1.1", Interface: "192.168.1.100"}
	if gw != want {
		t.Errorf("parseWindowsGateway() = %+v, want %+v", gw, want)
	}
}

func TestParseWindowsGatewayEmpty(t *testing.T) {
	if _, ok := parseWindowsGateway("IPv4 Route Table\n"); ok {
		t.Error("expected ok=false on output without a 0.0.0.0 row")
	}
}
