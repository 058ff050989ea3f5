// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const unknownBuildValue = "N/A"

// AppBuildInfo describes the client binary. The values are injected with
// -ldflags at build time; anything left empty reads as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) Version() string { return orUnknown(a.version) }
func (a AppBuildInfo) Date() string    { return orUnknown(a.date) }
func (a AppBuildInfo) Commit() string  { return orUnknown(a.commit) }

// String formats the build as a single line for --version style output.
func (a AppBuildInfo) String() string {
	return "go-chat-client " + a.Version() + " (" + a.Commit() + ", " + a.Date() + ")"
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return unknownBuildValue
	}
	return v
}
