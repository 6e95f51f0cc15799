package main

import (
	"os"

	"github.com/Benchkram/errz"
	"github.com/puppetlabs/thirteen/cmd"
	"github.com/puppetlabs/thirteen/config"
)

func main() {
	errz.Fatal(config.Load(), "Failed to load thirteen's config")

	os.Exit(cmd.Execute())
}
