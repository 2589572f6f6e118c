package netinfo

import "fmt"

// ARPTable returns the OS ARP cache listing as raw text for verbatim
// display. Command failure becomes an inline message in the section body;
// it never aborts collection.
func ARPTable(p Platform, runner Runner) string {
	command := "arp -n"
	if p == PlatformWindows {
		command = "arp -a"
	}
	out, err := runner.Run(command)
	if err != nil {
		return fmt.Sprintf("Error getting ARP table: %v", err)
	}
	return out
}

// DNSInfo returns the resolver configuration as raw text: `ipconfig /all`
// on Windows, /etc/resolv.conf elsewhere.
func DNSInfo(p Platform, runner Runner) string {
	command := "cat /etc/resolv.conf"
	if p == PlatformWindows {
		command = "ipconfig /all"
	}
	out, err := runner.Run(command)
	if err != nil {
		return fmt.Sprintf("Error getting DNS info: %v", err)
	}
	return out
}
