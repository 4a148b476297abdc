// Entrypoint for the cobra CLI; command wiring lives in cmd/root.go.
package main

import (
	"github.com/go-semicrf/crf/cmd"
)

func main() {
	cmd.Execute()
}
