// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Raphalinho91

package models

// AppBuildInfo is the build metadata injected into the binaries with
// -ldflags. Empty values mean the binary was built without them.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

// Response returns the body served by the version endpoint.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{Version: a.version, Date: a.date, Commit: a.commit}
}
