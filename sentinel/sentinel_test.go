package sentinel

import (
	"encoding/json"
	"testing"
)

func TestIsPending(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"marked", "[TODO: Translate] 加载", true},
		{"bare marker with space", "[TODO: Translate] ", true},
		{"marker without space", "[TODO: Translate]加载", false},
		{"marker not at start", "x [TODO: Translate] 加载", false},
		{"translated", "Load", false},
		{"empty", "", false},
		{"number", json.Number("1"), false},
		{"nil", nil, false},
		{"bool", true, false},
	}

	for _, tc := range tests {
		if got := IsPending(tc.value); got != tc.want {
			t.Fatalf("%s: IsPending(%#v) = %v, want %v", tc.name, tc.value, got, tc.want)
		}
	}
}

func TestExtractSource(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"[TODO: Translate] 加载", "加载"},
		{"[TODO: Translate] [TODO: Translate] 加载", "[TODO: Translate] 加载"},
		{"[TODO: Translate] ", ""},
		{"Load", "Load"},
	}

	for _, tc := range tests {
		if got := ExtractSource(tc.in); got != tc.want {
			t.Fatalf("ExtractSource(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSource(t *testing.T) {
	v := "[TODO: Translate] 请求和响应"
	src, ok := Source(v)
	if !ok || src != "请求和响应" {
		t.Fatalf("Source(%q) = %q, %v", v, src, ok)
	}

	if _, ok := Source(42); ok {
		t.Fatalf("Source(42) reported pending")
	}
}
