package main

import (
	"reflect"
	"sort"
	"testing"

	"github.com/smilit/i18ntools/cli"
)

func TestRootCommandTree(t *testing.T) {
	root := cli.NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)

	want := []string{"dict", "extract", "import", "status", "translate", "version"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("subcommands = %v, want %v", names, want)
	}

	if f := root.PersistentFlags().Lookup("root"); f == nil || f.DefValue != "." {
		t.Fatalf("--root flag = %v, want default %q", f, ".")
	}
}

func TestTranslateFlags(t *testing.T) {
	cmd, _, err := cli.NewRootCmd().Find([]string{"translate"})
	if err != nil {
		t.Fatalf("Find(translate) error: %v", err)
	}
	for _, name := range []string{"dry-run", "verbose", "progress-every", "catalog", "dictionary"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("translate is missing --%s", name)
		}
	}
}
