package version

import (
	"runtime/debug"
	"testing"
)

func TestResolve(t *testing.T) {
	withVCS := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		}}, true
	}
	none := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name       string
		rev, at    string
		read       func() (*debug.BuildInfo, bool)
		wantCommit string
		wantDate   string
		wantDirty  bool
	}{
		{"ldflags win", "feedface00", "2025-09-02", withVCS, "feedface00", "2025-09-02", true},
		{"vcs fallback", "", "", withVCS, "0123456789abcdef", "2026-01-02T03:04:05Z", true},
		{"nothing known", "", "", none, "none", "unknown", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := resolve("v1", tc.rev, tc.at, tc.read)
			if b.Service != Service || b.Version != "v1" || b.Go == "" {
				t.Fatalf("got %+v", b)
			}
			if b.Commit != tc.wantCommit || b.Date != tc.wantDate || b.Dirty != tc.wantDirty {
				t.Fatalf("got %+v", b)
			}
		})
	}
}

func TestShortCommit(t *testing.T) {
	if got := (BuildInfo{Commit: "0123456789"}).ShortCommit(); got != "0123456" {
		t.Fatalf("ShortCommit = %q", got)
	}
	if got := (BuildInfo{Commit: "none"}).ShortCommit(); got != "unknown" {
		t.Fatalf("ShortCommit = %q", got)
	}
}

func TestInfo_Stable(t *testing.T) {
	if Info() != Info() {
		t.Fatalf("Info should be resolved once")
	}
}
