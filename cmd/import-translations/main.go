// import-translations merges the translations filled in to
// translations-remaining.json back into src/i18n/patches/en.json.
package main

import "github.com/smilit/i18ntools/cli"

func main() {
	cli.Main(cli.NewImportCmd)
}
