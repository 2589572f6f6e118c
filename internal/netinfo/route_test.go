package netinfo

import (
	"errors"
	"strings"
	"testing"
)

// fakeRunner records every command it is asked to run and returns canned
// output or a canned error.
type fakeRunner struct {
	calls []string
	out   string
	err   error
}

func (f *fakeRunner) Run(command string) (string, error) {
	f.calls = append(f.calls, command)
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func TestGetRoutingTableUnsupportedPlatform(t *testing.T) {
	runner := &fakeRunner{}
	got := NewRouteService(PlatformOther, runner).GetRoutingTable()
	if got.Err != "Unsupported operating system" {
		t.Errorf("Err = %q, want unsupported-OS message", got.Err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("expected zero command invocations, got %v", runner.calls)
	}
}

func TestGetRoutingTableCommandSelection(t *testing.T) {
	tests := []struct {
		platform Platform
		wantCmd  string
	}{
		{PlatformWindows, "route print"},
		{PlatformLinux, "netstat -rn"},
		{PlatformDarwin, "netstat -rn"},
	}
	for _, tt := range tests {
		runner := &fakeRunner{out: ""}
		got := NewRouteService(tt.platform, runner).GetRoutingTable()
		if got.Failed() {
			t.Errorf("%v: unexpected error %q", tt.platform, got.Err)
		}
		if len(runner.calls) != 1 || runner.calls[0] != tt.wantCmd {
			t.Errorf("%v: calls = %v, want [%q]", tt.platform, runner.calls, tt.wantCmd)
		}
	}
}

func TestGetRoutingTableParsesOutput(t *testing.T) {
	runner := &fakeRunner{out: "default  10.0.0.1  UG  0  0  wlan0\n"}
	got := NewRouteService(PlatformLinux, runner).GetRoutingTable()
	if got.Failed() {
		t.Fatalf("unexpected error: %q", got.Err)
	}
	if len(got.Routes) != 1 || got.Routes[0].Gateway != "10.0.0.1" {
		t.Errorf("Routes = %+v, want one record with gateway 10.0.0.1", got.Routes)
	}
}

func TestGetRoutingTableCommandFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New(`exec: "netstat": executable file not found in $PATH`)}
	got := NewRouteService(PlatformDarwin, runner).GetRoutingTable()
	if !got.Failed() {
		t.Fatal("expected an error result")
	}
	if !strings.Contains(got.Err, "netstat") {
		t.Errorf("Err = %q, want the underlying command error", got.Err)
	}
	if got.Routes != nil {
		t.Errorf("Routes = %+v, want none on failure", got.Routes)
	}
}
