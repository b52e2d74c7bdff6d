// SPDX-License-Identifier: MPL-2.0

package edpak

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCourseDir lays out a course directory with the given manifest and
// files, returning its path.
func writeCourseDir(t *testing.T, parent, name, manifest string, files map[string]string) string {
	t.Helper()

	courseDir := filepath.Join(parent, name)
	if err := os.MkdirAll(courseDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(courseDir, ManifestFileName), []byte(manifest), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for rel, content := range files {
		path := filepath.Join(courseDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return courseDir
}

func TestBuildRoundTrip(t *testing.T) {
	dir := t.TempDir()
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"modules": [{"id": "m1", "title": "M", "content": "files/lesson.html"}]
	}`
	courseDir := writeCourseDir(t, dir, "my-course", manifest, map[string]string{
		"files/lesson.html": "<html></html>",
		"images/cover.png":  "fake image data",
	})

	outPath := filepath.Join(dir, "out", "my-course.edpak")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		t.Fatal(err)
	}

	built, err := Build(courseDir, outPath)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if built != outPath {
		t.Errorf("Build() = %q, want %q", built, outPath)
	}

	result := Validate(built)
	if !result.Valid {
		t.Fatalf("built archive invalid, errors = %v", result.Errors)
	}

	// Round-trip: extract and check the layout came back.
	extracted, err := Extract(built, ExtractOptions{DestDir: filepath.Join(dir, "extracted")})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	for _, rel := range []string{"manifest.json", "files/lesson.html", "images/cover.png"} {
		if _, err := os.Stat(filepath.Join(extracted, filepath.FromSlash(rel))); err != nil {
			t.Errorf("extracted archive missing %s: %v", rel, err)
		}
	}
}

func TestBuildMissingManifest(t *testing.T) {
	dir := t.TempDir()
	courseDir := writeCourseDir(t, dir, "no-manifest", "", map[string]string{
		"images/cover.png": "data",
	})

	if _, err := Build(courseDir, filepath.Join(dir, "out.edpak")); err == nil {
		t.Fatal("Build() without manifest.json should fail")
	}
}

func TestBuildRejectsInvalidCourse(t *testing.T) {
	dir := t.TempDir()
	courseDir := writeCourseDir(t, dir, "broken", `{"title": "only title"}`, nil)

	outPath := filepath.Join(dir, "broken.edpak")
	_, err := Build(courseDir, outPath)
	if err == nil {
		t.Fatal("Build() of an invalid course should fail")
	}
	if !strings.Contains(err.Error(), "built archive is invalid") {
		t.Errorf("error = %v, want built archive is invalid", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("invalid archive should be removed after a failed build")
	}
}

func TestExtractRefusesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	path := createArchive(t, dir, "course.edpak", map[string]string{
		"manifest.json": validManifest,
	})

	dest := filepath.Join(dir, "dest")
	if _, err := Extract(path, ExtractOptions{DestDir: dest}); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if _, err := Extract(path, ExtractOptions{DestDir: dest}); err == nil {
		t.Fatal("Extract() over an existing destination should fail")
	}

	if _, err := Extract(path, ExtractOptions{DestDir: dest, Overwrite: true}); err != nil {
		t.Errorf("Extract(Overwrite) error = %v", err)
	}
}

func TestExtractRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	path := createArchive(t, dir, "evil.edpak", map[string]string{
		"manifest.json":  validManifest,
		"../escaped.txt": "should not land outside",
	})

	dest := filepath.Join(dir, "dest")
	if _, err := Extract(path, ExtractOptions{DestDir: dest}); err == nil {
		t.Fatal("Extract() with a traversal entry should fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "escaped.txt")); !os.IsNotExist(err) {
		t.Error("traversal entry escaped the destination directory")
	}
}

func TestScaffoldLayout(t *testing.T) {
	dir := t.TempDir()

	coursePath, err := Scaffold(ScaffoldOptions{
		Name:      "new-course",
		ParentDir: dir,
		Title:     "New Course",
		Author:    "Jane Doe",
	})
	if err != nil {
		t.Fatalf("Scaffold() error = %v", err)
	}

	for _, rel := range []string{"manifest.json", "images", "videos", "files"} {
		if _, err := os.Stat(filepath.Join(coursePath, rel)); err != nil {
			t.Errorf("scaffold missing %s: %v", rel, err)
		}
	}

	// A scaffolded course packs into a valid archive as-is.
	built, err := Build(coursePath, filepath.Join(dir, "new-course.edpak"))
	if err != nil {
		t.Fatalf("Build() of scaffold error = %v", err)
	}
	result := Validate(built)
	if !result.Valid {
		t.Errorf("scaffolded archive invalid, errors = %v", result.Errors)
	}
	if result.Manifest.Title != "New Course" || result.Manifest.Author != "Jane Doe" {
		t.Errorf("Manifest = %+v, want scaffold metadata", result.Manifest)
	}

	// Scaffolding over an existing directory fails.
	if _, err := Scaffold(ScaffoldOptions{Name: "new-course", ParentDir: dir}); err == nil {
		t.Error("Scaffold() over an existing directory should fail")
	}
}

func TestScaffoldRequiresName(t *testing.T) {
	if _, err := Scaffold(ScaffoldOptions{ParentDir: t.TempDir()}); err == nil {
		t.Fatal("Scaffold() without a name should fail")
	}
}
