//go:build wasm

package internal

// runtimeKey is constant under wasm: goroutines share a single thread there,
// and callbacks from the host land on arbitrary ones.
func runtimeKey() int64 {
	return 0
}
