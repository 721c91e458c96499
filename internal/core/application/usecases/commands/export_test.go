package commands

import (
	"testing"
	"time"
)

// SetPublishTimeout shortens the post-commit publish bound for one test.
func SetPublishTimeout(t testing.TB, d time.Duration) {
	prev := publishTimeout
	publishTimeout = d
	t.Cleanup(func() { publishTimeout = prev })
}
