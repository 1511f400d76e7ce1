package config

import "sync"

// ResetForTest clears the cached loader state so tests can load different
// config files within the same process.
func ResetForTest() {
	loaded = nil
	loadErr = nil
	loadOnce = sync.Once{}
}
