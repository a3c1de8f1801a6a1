//go:build !wasm

package internal

import "github.com/petermattis/goid"

// runtimeKey is the id of the calling goroutine: every goroutine gets its
// own runtime.
func runtimeKey() int64 {
	return goid.Get()
}
