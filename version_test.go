package apetag

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, Version, GetVersion())
	assert.NotEmpty(t, info.GitCommit)
	assert.NotEmpty(t, info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestGetVersionInfo_LdflagsWin(t *testing.T) {
	oldCommit, oldTime := gitCommit, buildTime
	t.Cleanup(func() { gitCommit, buildTime = oldCommit, oldTime })

	gitCommit, buildTime = "abc1234", "2026-01-02T03:04:05Z"
	info := GetVersionInfo()

	assert.Equal(t, "abc1234", info.GitCommit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "0123456789ab", shortCommit("0123456789abcdef0123456789abcdef01234567"))
	assert.Equal(t, "abc", shortCommit("abc"))
}
