package main

import (
	"github.com/ssargent/revline/cmd/revline/cmd"
	"github.com/ssargent/revline/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
