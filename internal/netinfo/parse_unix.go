package netinfo

import (
	"regexp"
	"strings"
)

var dottedQuad = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)

// ParseUnixRoutes extracts route entries from `netstat -rn` output. Two
// line shapes qualify: default-route lines (leading "default" or "0.0.0.0")
// and lines whose destination is a dotted quad. Tokens map positionally to
// destination, gateway, genmask and flags; token 4 is netstat's
// refcount/use column and is not surfaced, so the interface name is read
// from token 5 when the line has one. Lines with too few tokens are
// dropped without comment.
func ParseUnixRoutes(output string) []RouteRecord {
	var routes []RouteRecord
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "default") || strings.HasPrefix(line, "0.0.0.0") {
			parts := strings.Fields(line)
			if len(parts) < 4 {
				continue
			}
			r := RouteRecord{
				Destination: parts[0],
				Gateway:     parts[1],
				Mask:        parts[2],
				Flags:       parts[3],
			}
			if len(parts) > 5 {
				r.Interface = parts[5]
			}
			routes = append(routes, r)
			continue
		}
		if dottedQuad.MatchString(line) {
			parts := strings.Fields(line)
			if len(parts) < 5 {
				continue
			}
			r := RouteRecord{
				Destination: parts[0],
				Gateway:     parts[1],
				Mask:        parts[2],
				Flags:       parts[3],
			}
			if len(parts) > 5 {
				r.Interface = parts[5]
			}
			routes = append(routes, r)
		}
	}
	return routes
}
