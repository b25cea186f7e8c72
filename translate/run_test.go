package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilit/i18ntools/catalog"
	"github.com/smilit/i18ntools/dictionary"
)

func parse(t *testing.T, data string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(data))
	require.NoError(t, err)
	return c
}

func marshal(t *testing.T, c *catalog.Catalog) string {
	t.Helper()
	out, err := c.Marshal()
	require.NoError(t, err)
	return string(out)
}

func TestRun_EndToEnd(t *testing.T) {
	d, err := dictionary.Default()
	require.NoError(t, err)
	tr := New(d)

	tests := []struct {
		in, key, want string
	}{
		{`{"a": "[TODO: Translate] 加载"}`, "a", "Load"},
		{`{"b": "[TODO: Translate] 加载失败"}`, "b", "Failed to load"},
		{`{"c": "[TODO: Translate] 请求和响应"}`, "c", "Request and Response"},
	}

	for _, tc := range tests {
		c := parse(t, tc.in)
		res := tr.Run(c, Options{})
		assert.Equal(t, 1, res.Translated())
		got, _ := c.String(tc.key)
		assert.Equal(t, tc.want, got)
	}
}

func TestRun_FailedSuffixWithMinimalDictionary(t *testing.T) {
	tr := New(dictionary.FromMap(map[string]string{"加载": "Load"}))
	c := parse(t, `{"b": "[TODO: Translate] 加载失败"}`)

	tr.Run(c, Options{})

	got, _ := c.String("b")
	assert.Equal(t, "Failed to load", got)
}

func TestRun_CountsAndUnresolvedUntouched(t *testing.T) {
	c := parse(t, `{
  "x": "Done",
  "a": "[TODO: Translate] 模型列表",
  "b": "[TODO: Translate] 你好",
  "c": "[TODO: Translate] 加载",
  "n": 1
}`)

	res := newSmall().Run(c, Options{})

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Translated())
	assert.Equal(t, 1, res.Remaining())
	assert.Equal(t, 67, res.Coverage())

	got, _ := c.String("b")
	assert.Equal(t, "[TODO: Translate] 你好", got)
	got, _ = c.String("x")
	assert.Equal(t, "Done", got)

	require.Len(t, res.Resolutions, 2)
	assert.Equal(t, Resolution{Key: "a", Source: "模型列表", Result: "Model list"}, res.Resolutions[0])
}

func TestRun_Idempotent(t *testing.T) {
	in := `{"a": "[TODO: Translate] 模型列表", "b": "[TODO: Translate] 你好", "c": "[TODO: Translate] 加载"}`
	once := parse(t, in)
	twice := parse(t, in)
	tr := newSmall()

	tr.Run(once, Options{})
	tr.Run(twice, Options{})
	second := tr.Run(twice, Options{})

	assert.Equal(t, marshal(t, once), marshal(t, twice))
	assert.Equal(t, 0, second.Translated())
	assert.Equal(t, 1, second.Total)
}

func TestRun_DryRunLeavesCatalog(t *testing.T) {
	in := "{\n  \"a\": \"[TODO: Translate] 加载\"\n}\n"
	c := parse(t, in)

	res := newSmall().Run(c, Options{DryRun: true})

	assert.Equal(t, 1, res.Translated())
	assert.Equal(t, in, marshal(t, c))
}

func TestRun_Progress(t *testing.T) {
	c := catalog.New()
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		c.SetString(k, "[TODO: Translate] 加载")
	}

	var calls [][2]int
	newSmall().Run(c, Options{
		ProgressEvery: 2,
		Progress:      func(done, total int) { calls = append(calls, [2]int{done, total}) },
	})

	assert.Equal(t, [][2]int{{2, 5}, {4, 5}}, calls)
}

func TestResult_Coverage(t *testing.T) {
	assert.Equal(t, 0, Result{}.Coverage())
	assert.Equal(t, 0, Result{}.Remaining())

	r := Result{Total: 3, Resolutions: make([]Resolution, 1)}
	assert.Equal(t, 33, r.Coverage())

	r = Result{Total: 2, Resolutions: make([]Resolution, 1)}
	assert.Equal(t, 50, r.Coverage())

	r = Result{Total: 8, Resolutions: make([]Resolution, 1)}
	assert.Equal(t, 13, r.Coverage(), "12.5 rounds half away from zero")
}
