// File: cmd/entropy/main.go
package main

import (
	"github.com/robolibs/entropy/cmd"
	"github.com/robolibs/entropy/internal/observability"
)

func main() {
	defer observability.Sync()
	cmd.Execute()
}
