// Command bake runs the cookie calculator offline against a Cookie header value.
//
// Usage:
//
//	bake decode 'recipe=eyJmbG91ciI6MTAwfQ=='
//	echo 'recipe=...' | bake run
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
