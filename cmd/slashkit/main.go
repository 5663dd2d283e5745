package main

import (
	_ "github.com/sglre6355/slashkit/internal/modules/test"
)

// version is set at build time via ldflags:
// go build -ldflags "-X main.version=1.0.0" ./cmd/slashkit
var version = "dev"

func main() {
	Execute()
}
