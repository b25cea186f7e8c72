// extract-todos collects the pending entries of src/i18n/patches/en.json
// into translations-remaining.json for manual translation.
package main

import "github.com/smilit/i18ntools/cli"

func main() {
	cli.Main(cli.NewExtractCmd)
}
