// Package version reports what binary is running
package version

import (
	"runtime"
	"runtime/debug"
	"sync"
)

// Service is the name the api reports for itself
const Service = "formvoice-api"

// Stamped with -ldflags "-X formvoice/internal/core/version.version=v1.2.0 ...".
// commit and date fall back to the vcs settings go embeds when left empty
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// BuildInfo identifies a build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	Dirty   bool   `json:"dirty,omitempty"`
}

// ShortCommit is the first seven characters of the commit, or "unknown"
func (b BuildInfo) ShortCommit() string {
	if len(b.Commit) < 7 {
		return "unknown"
	}
	return b.Commit[:7]
}

var (
	once sync.Once
	info BuildInfo
)

// Info returns the build info, resolved once per process
func Info() BuildInfo {
	once.Do(func() { info = resolve(version, commit, date, debug.ReadBuildInfo) })
	return info
}

func resolve(ver, rev, at string, read func() (*debug.BuildInfo, bool)) BuildInfo {
	b := BuildInfo{Service: Service, Version: ver, Commit: rev, Date: at, Go: runtime.Version()}
	if bi, ok := read(); ok && bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if b.Commit == "" {
					b.Commit = s.Value
				}
			case "vcs.time":
				if b.Date == "" {
					b.Date = s.Value
				}
			case "vcs.modified":
				b.Dirty = s.Value == "true"
			}
		}
	}
	if b.Commit == "" {
		b.Commit = "none"
	}
	if b.Date == "" {
		b.Date = "unknown"
	}
	return b
}
