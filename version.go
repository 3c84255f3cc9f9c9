package main

import (
	"github.com/oszuidwest/zwfm-pagegen/internal/config"
	"github.com/oszuidwest/zwfm-pagegen/internal/types"
	"github.com/oszuidwest/zwfm-pagegen/internal/util"
)

// Build metadata, set via ldflags:
//
//	go build -ldflags "-X main.Version=1.2.0 -X main.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// versionInfo returns the metadata of the running build.
func versionInfo() types.VersionInfo {
	return types.VersionInfo{
		Version:   config.NormalizeVersion(Version),
		Commit:    Commit,
		BuildTime: util.FormatHumanTime(BuildTime),
	}
}
