package extract

import (
	"testing"

	"github.com/smilit/i18ntools/catalog"
)

func mustParse(t *testing.T, data string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(data))
	if err != nil {
		t.Fatalf("catalog.Parse() error: %v", err)
	}
	return c
}

func TestPendingDeduplicates(t *testing.T) {
	c := mustParse(t, `{"x": "[TODO: Translate] 未知", "y": "[TODO: Translate] 未知"}`)

	res := Pending(c)
	if res.Distinct() != 1 {
		t.Fatalf("Distinct() = %d, want 1", res.Distinct())
	}
	if res.Entries != 2 {
		t.Fatalf("Entries = %d, want 2", res.Entries)
	}

	srcs := res.Set.Sources()
	if len(srcs) != 1 || srcs[0] != "未知" {
		t.Fatalf("Sources() = %v, want [未知]", srcs)
	}
	if tr, ok := res.Set.Translation("未知"); ok || tr != "" {
		t.Fatalf("Translation(未知) = %q, %v, want empty", tr, ok)
	}
}

func TestPendingSkipsTranslatedAndNonString(t *testing.T) {
	c := mustParse(t, `{
  "a": "Load",
  "b": "[TODO: Translate] 模型列表",
  "c": 3,
  "d": {"nested": "[TODO: Translate] 嵌套"},
  "e": "[TODO: Translate] 加载",
  "f": "[TODO: Translate] 模型列表",
  "g": "[TODO: Translate] "
}`)

	res := Pending(c)

	wantKeys := []string{"b", "e", "f", "g"}
	if len(res.Keys) != len(wantKeys) {
		t.Fatalf("Keys = %v, want %v", res.Keys, wantKeys)
	}
	for i := range wantKeys {
		if res.Keys[i] != wantKeys[i] {
			t.Fatalf("Keys = %v, want %v", res.Keys, wantKeys)
		}
	}

	srcs := res.Set.Sources()
	if len(srcs) != 2 || srcs[0] != "模型列表" || srcs[1] != "加载" {
		t.Fatalf("Sources() = %v, want [模型列表 加载]", srcs)
	}
}

func TestPendingEmptyCatalog(t *testing.T) {
	res := Pending(catalog.New())
	if res.Distinct() != 0 || res.Entries != 0 {
		t.Fatalf("Pending(empty) = %d distinct, %d entries", res.Distinct(), res.Entries)
	}
}
