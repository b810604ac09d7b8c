package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestIsYAML(t *testing.T) {
	require.True(t, IsYAML("a/b.yaml"))
	require.True(t, IsYAML("B.YML"))
	require.False(t, IsYAML("c.json"))
	require.False(t, IsYAML("noext"))
}

func TestDecode_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jp := filepath.Join(dir, "s.json")
	require.NoError(t, os.WriteFile(jp, []byte(`{"name":"a","count":2}`), 0o600))
	var js sample
	require.NoError(t, Decode(jp, &js))
	require.Equal(t, sample{Name: "a", Count: 2}, js)

	yp := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(yp, []byte("name: b\ncount: 3\n"), 0o600))
	var ys sample
	require.NoError(t, Decode(yp, &ys))
	require.Equal(t, sample{Name: "b", Count: 3}, ys)
}

func TestDecode_Errors(t *testing.T) {
	dir := t.TempDir()
	var s sample

	require.Error(t, Decode(filepath.Join(dir, "missing.json"), &s))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
	require.ErrorContains(t, Decode(bad, &s), "parse json")

	badYAML := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(badYAML, []byte("name: [unclosed"), 0o600))
	require.ErrorContains(t, Decode(badYAML, &s), "parse yaml")
}

func TestWriteFile_CreatesParents(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out", "nested", "timeline.svg")
	require.NoError(t, WriteFile(p, []byte("<svg/>")))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "<svg/>", string(b))
}
