package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReportsBuildDefaults(t *testing.T) {
	info := Get()

	// Without ldflags the stamped fields keep their placeholders.
	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}
