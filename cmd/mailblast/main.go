package main

import (
	"github.com/hakaru-org/mailblast/pkg/root"

	_ "github.com/hakaru-org/mailblast/pkg/console" // Register commands
)

func main() {
	root.Execute()
}
