package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/P70-ops/network-analyzer/internal/netinfo"
)

const bannerWidth = 80

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Width(bannerWidth).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Left).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// RenderSnapshot renders the full report: routing table, interfaces,
// gateways, then the raw ARP and DNS sections. Pure string builder; the
// caller prints it. Never executes OS commands.
func RenderSnapshot(s *netinfo.Snapshot) string {
	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", bannerWidth) + "\n")
	b.WriteString(titleStyle.Render("NETWORK INFORMATION TOOL") + "\n")
	b.WriteString(strings.Repeat("=", bannerWidth) + "\n")

	b.WriteString(section("ROUTING TABLE"))
	b.WriteString(renderRoutes(s.Routes))
	b.WriteString(section("NETWORK INTERFACES"))
	b.WriteString(renderInterfaces(s.Interfaces))
	b.WriteString(section("DEFAULT GATEWAYS"))
	b.WriteString(renderGateways(s.Gateways))
	b.WriteString(section("ARP TABLE"))
	b.WriteString(strings.TrimRight(s.ARP, "\n") + "\n")
	b.WriteString(section("DNS INFORMATION"))
	b.WriteString(strings.TrimRight(s.DNS, "\n") + "\n")
	return b.String()
}

func section(title string) string {
	return "\n" + strings.Repeat("-", bannerWidth) + "\n" +
		titleStyle.Render(title) + "\n" +
		strings.Repeat("-", bannerWidth) + "\n"
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderRoutes(r netinfo.RouteResult) string {
	if r.Failed() {
		return errorStyle.Render("Error: "+r.Err) + "\n"
	}
	t := newTable("Destination", "Gateway", "Netmask", "Interface", "Metric/Flags")
	for _, route := range r.Routes {
		t.Row(orNA(route.Destination), orNA(route.Gateway), orNA(route.Mask),
			orNA(route.Interface), orNA(route.Flags))
	}
	return t.Render() + "\n"
}

func renderInterfaces(ifaces map[string]netinfo.InterfaceDetail) string {
	if len(ifaces) == 0 {
		return "No interface information available\n"
	}
	t := newTable("Interface", "IP Address", "Netmask", "MAC Address", "Broadcast")
	for _, name := range sortedKeys(ifaces) {
		d := ifaces[name]
		t.Row(name, d.IP, d.Netmask, orNA(d.MAC), orNA(d.Broadcast))
	}
	return t.Render() + "\n"
}

func renderGateways(gws map[string]netinfo.Gateway) string {
	if len(gws) == 0 {
		return "No gateway information available\n"
	}
	t := newTable("Type", "Gateway IP", "Interface")
	for _, tag := range sortedKeys(gws) {
		g := gws[tag]
		t.Row(tag, g.IP, orNA(g.Interface))
	}
	return t.Render() + "\n"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
