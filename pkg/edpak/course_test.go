// SPDX-License-Identifier: MPL-2.0

package edpak

import (
	"testing"
)

// courseManifest is a fully fleshed-out course: description, one module with
// a quiz lesson and an image lesson whose filePath resolves inside the
// archive. It should validate without warnings.
const courseManifest = `{
	"title": "Full Course",
	"version": "2.0.0",
	"author": "Tester",
	"description": "A complete course",
	"modules": [
		{"id": "m1", "title": "Module 1", "description": "Intro module"}
	],
	"lessons": [
		{"id": "l1", "moduleId": "m1", "title": "Cover", "type": "Image", "filePath": "images/cover.png"},
		{"id": "l2", "moduleId": "m1", "title": "Quiz", "type": "MultipleChoice"}
	]
}`

func TestCourseStructureHappyPath(t *testing.T) {
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json":    courseManifest,
		"images/cover.png": "fake image data",
	})

	result := Validate(path)
	if !result.Valid {
		t.Fatalf("Validate() invalid, errors = %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
	if len(result.Manifest.Lessons) != 2 {
		t.Errorf("Manifest.Lessons = %+v, want 2 entries", result.Manifest.Lessons)
	}
}

func TestCourseStructureSkippedWithoutLessons(t *testing.T) {
	// No lessons key means only the basic manifest rules apply; modules
	// without lessons or covers must not be flagged.
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json": validManifest,
	})

	result := Validate(path)
	if !result.Valid {
		t.Fatalf("Validate() invalid, errors = %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
}

func TestCourseLessonsNotAnArray(t *testing.T) {
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"modules": [{"id": "m1", "title": "M"}],
		"lessons": "nope"
	}`
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json": manifest,
	})

	result := Validate(path)
	if !hasError(result, "Field 'lessons' must be an array when present") {
		t.Errorf("Errors = %v, want lessons type error", result.Errors)
	}
}

func TestCourseLessonsEmpty(t *testing.T) {
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"modules": [{"id": "m1", "title": "M"}],
		"lessons": []
	}`
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json": manifest,
	})

	result := Validate(path)
	if !hasError(result, "Course defines a lessons array but it is empty") {
		t.Errorf("Errors = %v, want empty lessons error", result.Errors)
	}
}

func TestCourseMissingDescriptionWarning(t *testing.T) {
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"modules": [
			{"id": "m1", "title": "M", "description": "has one"}
		],
		"lessons": [
			{"id": "l1", "moduleId": "m1", "type": "Image", "filePath": "images/cover.png"},
			{"id": "l2", "moduleId": "m1", "type": "MultipleChoice"}
		]
	}`
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json":    manifest,
		"images/cover.png": "data",
	})

	result := Validate(path)
	if !result.Valid {
		t.Fatalf("Validate() invalid, errors = %v", result.Errors)
	}
	if !hasWarning(result, "Course description is missing or empty") {
		t.Errorf("Warnings = %v, want course description warning", result.Warnings)
	}
}

func TestCourseModuleWithNoLessons(t *testing.T) {
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"description": "desc",
		"modules": [
			{"id": "m1", "title": "Module 1", "description": "d"},
			{"id": "m2", "title": "Module 2", "description": "d"}
		],
		"lessons": [
			{"id": "l1", "moduleId": "m1", "type": "Image", "filePath": "images/cover.png"},
			{"id": "l2", "moduleId": "m1", "type": "MultipleChoice"}
		]
	}`
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json":    manifest,
		"images/cover.png": "data",
	})

	result := Validate(path)
	if result.Valid {
		t.Fatal("Validate() valid, want invalid")
	}
	if !hasError(result, "Module 'm2' ('Module 2') has no lessons associated with it") {
		t.Errorf("Errors = %v, want no-lessons error", result.Errors)
	}
}

func TestCourseAdvisoryWarnings(t *testing.T) {
	// Module has lessons but no quiz, no resolvable image cover, and no
	// description; the course itself has no cover either.
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"description": "desc",
		"modules": [
			{"id": "m1", "title": "Module 1"}
		],
		"lessons": [
			{"id": "l1", "moduleId": "m1", "type": "Text"},
			{"id": "l2", "moduleId": "m1", "type": "Image", "filePath": "images/gone.png"}
		]
	}`
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json": manifest,
	})

	result := Validate(path)
	if result.Valid != true {
		t.Fatalf("Validate() invalid, errors = %v", result.Errors)
	}

	for _, want := range []string{
		"Course cover image not found (no image lessons with valid filePath)",
		"Module 'm1' is missing a description",
		"Module 'm1' ('Module 1') has no quiz lessons of type 'MultipleChoice'",
		"Module 'm1' ('Module 1') has no image lessons with valid filePath (module cover image missing)",
	} {
		if !hasWarning(result, want) {
			t.Errorf("Warnings = %v, want %q", result.Warnings, want)
		}
	}
}

func TestCourseMalformedLessonEntries(t *testing.T) {
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"description": "desc",
		"modules": [
			{"id": "m1", "title": "Module 1", "description": "d"}
		],
		"lessons": [
			"not an object",
			{"id": "l1", "title": "no module ref"},
			{"id": "l2", "moduleId": "m1", "type": "MultipleChoice"},
			{"id": "l3", "moduleId": "m1", "type": "Image", "filePath": "images/cover.png"}
		]
	}`
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json":    manifest,
		"images/cover.png": "data",
	})

	result := Validate(path)
	if !hasError(result, "Lesson at index 0 is not an object") {
		t.Errorf("Errors = %v, want non-object lesson error", result.Errors)
	}
	if !hasError(result, "Lesson at index 1 missing valid 'moduleId'") {
		t.Errorf("Errors = %v, want moduleId error", result.Errors)
	}
}

func TestCourseEmptyModuleTitle(t *testing.T) {
	manifest := `{
		"title": "T", "version": "1.0.0", "author": "A",
		"description": "desc",
		"modules": [
			{"id": "m1", "title": "   ", "description": "d"}
		],
		"lessons": [
			{"id": "l1", "moduleId": "m1", "type": "MultipleChoice"},
			{"id": "l2", "moduleId": "m1", "type": "Image", "filePath": "images/cover.png"}
		]
	}`
	path := createArchive(t, t.TempDir(), "course.edpak", map[string]string{
		"manifest.json":    manifest,
		"images/cover.png": "data",
	})

	result := Validate(path)
	if !hasError(result, "Module at index 0 has an empty or invalid 'title'") {
		t.Errorf("Errors = %v, want empty title error", result.Errors)
	}
}
