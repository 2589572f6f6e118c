//go:build !linux && !darwin && !windows

package netinfo

func defaultGateways(_ Runner) map[string]Gateway {
	return map[string]Gateway{}
}
