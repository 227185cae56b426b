package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	// The engine owns its window and GL context on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
