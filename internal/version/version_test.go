package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Name != "tulipd" {
		t.Errorf("Name = %q, want tulipd", info.Name)
	}
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
}

func TestLong(t *testing.T) {
	info := Info{
		Name:      "tulipd",
		Version:   "1.2.3",
		GitCommit: "abc1234",
		BuildDate: "2026-10-01",
		GoVersion: "go1.24.11",
		Platform:  "linux/arm",
	}

	got := info.Long()
	for _, want := range []string{"tulipd 1.2.3", "commit abc1234", "built 2026-10-01", "linux/arm"} {
		if !strings.Contains(got, want) {
			t.Errorf("Long() = %q, missing %q", got, want)
		}
	}
}
