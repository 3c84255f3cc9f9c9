package types

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`              // Normalized version (no "v" prefix)
	Commit    string `json:"commit,omitempty"`     // Git commit hash
	BuildTime string `json:"build_time,omitempty"` // Build timestamp
}
