//go:build !(js && wasm)

package main

import "log"

func main() {
	log.Fatal("cmd/wasm only runs in a browser: build with GOOS=js GOARCH=wasm")
}
