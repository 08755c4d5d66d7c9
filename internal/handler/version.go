package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"

	"github.com/quinfall/companion/internal/player"
)

// VersionInfo describes the running daemon: its own release, the Go
// toolchain it was built with, and the profile save format it writes.
// Save tooling checks profile_version before touching save files.
type VersionInfo struct {
	Version        string `json:"version"`
	GoVersion      string `json:"go_version"`
	ProfileVersion int    `json:"profile_version"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// HandleVersion returns version information about the daemon
// @Summary Build information
// @Description Returns the daemon version, build metadata, and the profile save format version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := VersionInfo{
			Version:        resolveVersion(),
			GoVersion:      runtime.Version(),
			ProfileVersion: player.CurrentProfileVersion,
			BuildTime:      BuildTime,
			GitCommit:      GitCommit,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(info)
	}
}

// resolveVersion prefers the ldflags-injected version, then the
// VERSION environment variable, then "dev".
func resolveVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
