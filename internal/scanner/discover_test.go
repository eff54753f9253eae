package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kilnworks/assetpath/internal/pathnorm"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover_FindsAnchoredDirs(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"Assets/Textures",
		"Assets/Audio/Music",
		"Docs", // not under Assets
	)
	touch(t, filepath.Join(root, "Assets/Textures/wood.png"))
	touch(t, filepath.Join(root, "Assets/Textures/stone.png"))

	dirs, err := Discover(root, pathnorm.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// Assets, Assets/Audio, Assets/Audio/Music, Assets/Textures anchored;
	// Docs is not. The bare "Assets" dir itself has no marker followed by
	// a segment, so it is excluded too.
	want := map[string]int{
		"Assets/Audio/":       0,
		"Assets/Audio/Music/": 0,
		"Assets/Textures/":    2,
	}
	if len(dirs) != len(want) {
		t.Fatalf("expected %d dirs, got %d: %+v", len(want), len(dirs), dirs)
	}
	for _, d := range dirs {
		files, ok := want[d.Canonical]
		if !ok {
			t.Errorf("unexpected dir %q", d.Canonical)
			continue
		}
		if d.Files != files {
			t.Errorf("%s: expected %d files, got %d", d.Canonical, files, d.Files)
		}
		if !d.Changed {
			t.Errorf("%s: trailing slash was added, Changed should be true", d.Canonical)
		}
	}
}

func TestDiscover_SortedByCanonical(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Assets/Zebra", "Assets/Alpha")

	dirs, err := Discover(root, pathnorm.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dirs) != 2 {
		t.Fatalf("expected 2 dirs, got %d", len(dirs))
	}
	if dirs[0].Canonical != "Assets/Alpha/" || dirs[1].Canonical != "Assets/Zebra/" {
		t.Errorf("not sorted: %q, %q", dirs[0].Canonical, dirs[1].Canonical)
	}
}

func TestDiscover_IgnoreList(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Assets/Textures", "Library/Assets/Cache", ".git/Assets")

	dirs, err := Discover(root, pathnorm.Default(), []string{"Library"})
	if err != nil {
		t.Fatal(err)
	}
	if len(dirs) != 1 {
		t.Fatalf("expected 1 dir, got %d: %+v", len(dirs), dirs)
	}
	if dirs[0].Canonical != "Assets/Textures/" {
		t.Errorf("got %q", dirs[0].Canonical)
	}
}

func TestDiscover_ResourcesRoot(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "Assets/Resources/Fonts", "Assets/Materials")

	opts := pathnorm.Options{Root: pathnorm.Resources, Style: pathnorm.Forward}
	dirs, err := Discover(root, opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dirs) != 1 {
		t.Fatalf("expected 1 dir, got %d: %+v", len(dirs), dirs)
	}
	if dirs[0].Canonical != "Fonts" {
		t.Errorf("got %q, want %q", dirs[0].Canonical, "Fonts")
	}
}
