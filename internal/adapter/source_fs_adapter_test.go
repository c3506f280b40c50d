package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/crowbar/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.rs"), "fn main() {}\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.rs"), "fn child() {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.NotContains(t, visited, filepath.Join(nestedDir, "child.rs"))
		assert.Contains(t, visited, filepath.Join(root, "main.rs"))
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.rs")
		writeTestFile(t, child, "fn child() {}\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.Contains(t, visited, child)
	})
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.rs")
	content := "fn main() {\n    let x: i32 = 5;\n}\n"

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte(content), 0o644))

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.rs")
	content := []byte("fn main() {}\n")
	writeTestBytes(t, path, content)

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(content)), hash)
	assert.Equal(t, hash, HashContent(content))

	_, err = adapter.HashFile(m.Path(filepath.Join(t.TempDir(), "missing.rs")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.rs")
	writeTestFile(t, path, "fn main() {}\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

func TestLocalSourceFSAdapter_CreateTempDirAndRemoveAll(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	tmp, err := adapter.CreateTempDir("crowbar-test-*")
	require.NoError(t, err)

	fi, err := os.Stat(string(tmp))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	writeTestFile(t, filepath.Join(string(tmp), "main.rs"), "fn main() {}\n")

	require.NoError(t, adapter.RemoveAll(tmp))

	_, err = os.Stat(string(tmp))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalSourceFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	joined := adapter.JoinPath("/tmp", "project", "src", "main.rs")
	assert.Equal(t, filepath.Join("/tmp", "project", "src", "main.rs"), string(joined))
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("directory selects rust files non-recursive", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.rs")
		writeTestFile(t, mainPath, "fn main() {}\n")
		writeTestFile(t, filepath.Join(root, "Cargo.toml"), "[package]\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.rs"), "fn child() {}\n")

		files, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)

		require.Len(t, files, 1)
		assert.Equal(t, m.Path(mainPath), files[0].Path)
	})

	t.Run("recursive path includes nested files in order", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.rs"), "")
		writeTestFile(t, filepath.Join(root, "a.rs"), "")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.rs"), "")

		targetDir := filepath.Join(root, "target")
		mustMkdir(t, targetDir)
		writeTestFile(t, filepath.Join(targetDir, "build.rs"), "")

		files, err := adapter.Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)

		var got []m.Path
		for _, f := range files {
			got = append(got, f.Path)
		}

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a.rs")),
			m.Path(filepath.Join(root, "b.rs")),
			m.Path(filepath.Join(nestedDir, "child.rs")),
		}, got)
	})

	t.Run("explicit file is returned whatever its extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snippet.txt")
		writeTestFile(t, path, "let x = 1;\n")

		files, err := adapter.Get([]m.Path{m.Path(path)})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, m.Path(path), files[0].Path)
	})

	t.Run("tilde expands home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		mainPath := filepath.Join(home, "home.rs")
		writeTestFile(t, mainPath, "fn main() {}\n")

		files, err := adapter.Get([]m.Path{"~"})
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, m.Path(mainPath), files[0].Path)
	})

	t.Run("duplicate roots are de-duplicated", func(t *testing.T) {
		root := t.TempDir()
		mainPath := filepath.Join(root, "main.rs")
		writeTestFile(t, mainPath, "fn main() {}\n")

		files, err := adapter.Get([]m.Path{m.Path(root), m.Path(mainPath)})
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("returns error for missing root", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{"/path/does/not/exist"})
		assert.Error(t, err)
	})
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	writeTestBytes(t, path, []byte(content))
}

func writeTestBytes(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}
