package netinfo

import "strings"

// ParseWindowsRoutes extracts default-route entries from `route print`
// output. Only lines whose trimmed content starts with the 0.0.0.0
// destination qualify; rows for other destinations are skipped. Columns:
// Network Destination, Netmask, Gateway, Interface, Metric.
func ParseWindowsRoutes(output string) []RouteRecord {
	var routes []RouteRecord
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "0.0.0.0") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		metric := ""
		if len(parts) > 4 {
			metric = parts[4]
		}
		routes = append(routes, RouteRecord{
			Destination: parts[0],
			Mask:        parts[1],
			Gateway:     parts[2],
			Interface:   parts[3],
			Flags:       metric,
		})
	}
	return routes
}
