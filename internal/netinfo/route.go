package netinfo

// RouteRecord is one parsed routing-table entry. Empty fields were absent
// from the source line. Flags holds Unix routing flags or the Windows route
// metric; the two share a display column.
type RouteRecord struct {
	Destination string
	Gateway     string
	Mask        string
	Flags       string
	Interface   string
}

// RouteResult is the outcome of one routing-table collection: an ordered
// record list, or a section-local error message when the platform is
// unsupported or the route command failed.
type RouteResult struct {
	Routes []RouteRecord
	Err    string
}

// Failed reports whether collection produced an error instead of records.
func (r RouteResult) Failed() bool {
	return r.Err != ""
}

// RouteService acquires the host routing table by running the platform's
// route command and parsing its text output.
type RouteService struct {
	platform Platform
	runner   Runner
}

func NewRouteService(p Platform, r Runner) *RouteService {
	return &RouteService{platform: p, runner: r}
}

// GetRoutingTable makes a fresh external call and parses the result; nothing
// is cached and nothing is retried. Unsupported platforms get an error
// result without spawning any process.
func (s *RouteService) GetRoutingTable() RouteResult {
	switch s.platform {
	case PlatformWindows:
		out, err := s.runner.Run("route print")
		if err != nil {
			return RouteResult{Err: err.Error()}
		}
		return RouteResult{Routes: ParseWindowsRoutes(out)}
	case PlatformLinux, PlatformDarwin:
		out, err := s.runner.Run("netstat -rn")
		if err != nil {
			return RouteResult{Err: err.Error()}
		}
		return RouteResult{Routes: ParseUnixRoutes(out)}
	default:
		return RouteResult{Err: "Unsupported operating system"}
	}
}
