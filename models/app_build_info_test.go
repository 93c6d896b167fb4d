// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123")

	assert.True(t, info.IsRelease())
	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", info.String())
}

func TestAppBuildInfo_NotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.False(t, info.IsRelease())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
