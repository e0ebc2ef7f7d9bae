package testutil

import (
    "os"
    "testing"
)

// WithEnv sets key to val until the returned func runs. An empty val
// unsets the variable.
func WithEnv(t *testing.T, key, val string) func() {
    t.Helper()
    old, had := os.LookupEnv(key)
    if val == "" {
        _ = os.Unsetenv(key)
    } else {
        _ = os.Setenv(key, val)
    }
    return func() {
        if had {
            _ = os.Setenv(key, old)
        } else {
            _ = os.Unsetenv(key)
        }
    }
}

// ConfigHome points the user config dir (and HOME, its fallback) at a fresh
// temp dir for the rest of the test and returns it.
func ConfigHome(t *testing.T) string {
    t.Helper()
    tmp := t.TempDir()
    t.Cleanup(WithEnv(t, "XDG_CONFIG_HOME", tmp))
    t.Cleanup(WithEnv(t, "HOME", tmp))
    return tmp
}
