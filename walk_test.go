package reactenv

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates files under root from a map of relative path to content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestEnumerateAssets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		files      map[string]string
		extensions []string
		exclude    []string
		want       []string
	}{
		{
			name: "default extensions only",
			files: map[string]string{
				"app.js":     "",
				"style.css":  "",
				"index.html": "",
				"logo.png":   "",
			},
			extensions: []string{".js", ".css"},
			want:       []string{"app.js", "style.css"},
		},
		{
			name: "recurses and sorts",
			files: map[string]string{
				"static/js/b.js": "",
				"static/js/a.js": "",
				"a.js":           "",
			},
			extensions: []string{".js"},
			want:       []string{"a.js", "static/js/a.js", "static/js/b.js"},
		},
		{
			name: "extension match is case-insensitive",
			files: map[string]string{
				"a.JS":  "",
				"b.Css": "",
			},
			extensions: []string{".js", ".css"},
			want:       []string{"a.JS", "b.Css"},
		},
		{
			name: "extension without leading dot",
			files: map[string]string{
				"a.js": "",
			},
			extensions: []string{"js"},
			want:       []string{"a.js"},
		},
		{
			name: "exclude globs",
			files: map[string]string{
				"app.js":            "",
				"app.js.map.js":     "",
				"vendor/lodash.js":  "",
				"static/chunk.js":   "",
				"static/runtime.js": "",
			},
			extensions: []string{".js"},
			exclude:    []string{"vendor/**", "**/runtime.js"},
			want:       []string{"app.js", "app.js.map.js", "static/chunk.js"},
		},
		{
			name: "html opt-in",
			files: map[string]string{
				"index.html": "",
				"app.js":     "",
			},
			extensions: []string{".html"},
			want:       []string{"index.html"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			writeTree(t, root, tt.files)

			got, err := enumerateAssets(root, tt.extensions, tt.exclude)
			if err != nil {
				t.Fatalf("enumerateAssets: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("enumerateAssets = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumerateAssetsBadPattern(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.js": ""})

	_, err := enumerateAssets(root, []string{".js"}, []string{"[unclosed"})
	if !errors.Is(err, ErrBadPattern) {
		t.Errorf("enumerateAssets with bad glob = %v, want %v", err, ErrBadPattern)
	}
}

func TestEnumerateAssetsSkipsDirectoriesWithMatchingNames(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "weird.js"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTree(t, root, map[string]string{"weird.js/inner.js": ""})

	got, err := enumerateAssets(root, []string{".js"}, nil)
	if err != nil {
		t.Fatalf("enumerateAssets: %v", err)
	}
	want := []string{"weird.js/inner.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("enumerateAssets = %v, want %v", got, want)
	}
}
