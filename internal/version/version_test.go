package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyVCS(t *testing.T) {
	tests := []struct {
		name        string
		stamp       vcsStamp
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "clean tree",
			stamp:       vcsStamp{revision: "0123456789abcdef", time: "2026-03-14T09:26:53Z"},
			wantVersion: "dev-20260314",
			wantCommit:  "0123456",
		},
		{
			name:        "dirty tree",
			stamp:       vcsStamp{revision: "abc", modified: true},
			wantVersion: "",
			wantCommit:  "abc-dirty",
		},
		{
			name:        "bad time",
			stamp:       vcsStamp{time: "yesterday"},
			wantVersion: "",
			wantCommit:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			savedVersion, savedCommit := Version, Commit
			t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })

			Version, Commit = "", ""
			applyVCS(tt.stamp)

			assert.Equal(t, tt.wantVersion, Version)
			assert.Equal(t, tt.wantCommit, Commit)
		})
	}
}

func TestApplyVCSKeepsLinkerValues(t *testing.T) {
	savedVersion, savedCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = savedVersion, savedCommit })

	Version, Commit = "v1.0.0", "feedbee"
	applyVCS(vcsStamp{revision: "0123456789", time: "2026-03-14T09:26:53Z"})

	assert.Equal(t, "v1.0.0", Version)
	assert.Equal(t, "feedbee", Commit)
}

func TestGet(t *testing.T) {
	info := Get()

	assert.NotEmpty(t, info.Version, "init should always set a version")
	assert.NotEmpty(t, info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestFull(t *testing.T) {
	full := Full()
	assert.True(t, strings.HasPrefix(full, Version+" (commit: "), full)
	assert.True(t, strings.HasSuffix(full, Commit+")"), full)
}
