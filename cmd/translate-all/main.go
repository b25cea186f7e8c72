// translate-all translates the pending entries of src/i18n/patches/en.json
// with the built-in phrase dictionary.
package main

import "github.com/smilit/i18ntools/cli"

func main() {
	cli.Main(cli.NewTranslateCmd)
}
