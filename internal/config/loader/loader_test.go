package loader

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func TestTOMLLoaderLoad(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/textnav.toml", `
[logging]
level = "debug"

[markers]
multi_char = true
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/textnav.toml").Load()
	require.NoError(t, err)

	logging, ok := config["logging"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "debug", logging["level"])

	markers, ok := config["markers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, markers["multi_char"])
}

func TestTOMLLoaderMissingFile(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()
	assert.NoError(t, err)
	assert.Nil(t, config)
}

func TestTOMLLoaderParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[logging]\nlevel = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "/bad.toml", perr.Path)
	assert.Positive(t, perr.Line)
}

func TestTOMLLoaderFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader("[words]\nunicode = true\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"words": map[string]any{"unicode": true}}, config)
}

func TestYAMLLoaderLoad(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/textnav.yaml", "logging:\n  level: warn\nwords:\n  unicode: true\n")

	config, err := NewYAMLLoaderWithFS(memfs, "/textnav.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"logging": map[string]any{"level": "warn"},
		"words":   map[string]any{"unicode": true},
	}, config)
}

func TestYAMLLoaderEmptyAndBroken(t *testing.T) {
	config, err := NewYAMLLoader("").LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, config)

	_, err = NewYAMLLoader("").LoadFromReader(strings.NewReader("logging: [unclosed"))
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestForPath(t *testing.T) {
	memfs := NewMemFS()

	assert.IsType(t, &YAMLLoader{}, ForPath(memfs, "a.yaml"))
	assert.IsType(t, &YAMLLoader{}, ForPath(memfs, "a.YML"))
	assert.IsType(t, &TOMLLoader{}, ForPath(memfs, "a.toml"))
	assert.IsType(t, &TOMLLoader{}, ForPath(memfs, "textnavrc"))
}

func TestEnvLoader(t *testing.T) {
	t.Setenv("TEXTNAV_LOG_LEVEL", "error")
	t.Setenv("TEXTNAV_WORDS_UNICODE", "yes")
	t.Setenv("TEXTNAV_MARKERS_MULTI_CHAR", "false")

	config, err := NewEnvLoader("TEXTNAV_").Load()
	require.NoError(t, err)

	assert.Equal(t, "error", config["logging"].(map[string]any)["level"])
	assert.Equal(t, true, config["words"].(map[string]any)["unicode"])
	assert.Equal(t, false, config["markers"].(map[string]any)["multi_char"])
}

func TestEnvLoaderCustomMapping(t *testing.T) {
	t.Setenv("NAVTEST_VERBOSITY", "debug")

	l := NewEnvLoader("NAVTEST_")
	l.AddMapping("NAVTEST_VERBOSITY", "logging.level")

	config, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"logging": map[string]any{"level": "debug"}}, config)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, true, parseValue("on"))
	assert.Equal(t, false, parseValue("No"))
	assert.Equal(t, int64(42), parseValue("42"))
	assert.Equal(t, "info", parseValue("info"))
}
