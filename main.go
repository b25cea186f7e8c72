// i18ntools: maintenance tools for the JSON translation catalog.
//
// Build with version information:
//
//	go build -ldflags "-X github.com/smilit/i18ntools/cli.Version=1.0.0"
package main

import "github.com/smilit/i18ntools/cli"

func main() {
	cli.Main(cli.NewRootCmd)
}
