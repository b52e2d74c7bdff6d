// SPDX-License-Identifier: MPL-2.0

package edpak

const (
	// FileSuffix is the required file extension for edpak archives.
	FileSuffix = ".edpak"

	// ManifestFileName is the manifest entry expected at the archive root.
	ManifestFileName = "manifest.json"

	// LessonTypeImage marks a lesson backed by an image file. An image lesson
	// with a resolvable filePath doubles as a module or course cover.
	LessonTypeImage = "Image"

	// LessonTypeMultipleChoice marks a quiz lesson.
	LessonTypeMultipleChoice = "MultipleChoice"
)

// DefaultAllowedDirs lists the top-level asset directories an archive may
// contain. Structured content belongs in manifest.json, not in ad-hoc
// directories, so anything outside this set fails validation.
var DefaultAllowedDirs = []string{"images", "videos", "files"}

// requiredManifestFields are checked in this fixed order so message order is
// stable across runs.
var requiredManifestFields = []string{"title", "version", "author", "modules"}

type (
	// Manifest is the typed view of a manifest.json, populated from the
	// fields that pass the parse-boundary checks. Fields that were missing or
	// mistyped in the raw JSON are left at their zero values; the
	// ValidationResult carries the corresponding errors.
	Manifest struct {
		Title       string
		Version     string
		Author      string
		Description string
		Language    string
		Modules     []Module
		Lessons     []Lesson
	}

	// Module is a named unit of course content, optionally referencing a
	// content file inside the archive.
	Module struct {
		ID          string
		Title       string
		Content     string
		Description string
		// Order is nil when the manifest omits the field.
		Order *float64
	}

	// Lesson is a finer-grained content item belonging to a module. Only the
	// fields that drive course-structure checks are retained.
	Lesson struct {
		ID       string
		ModuleID string
		Title    string
		Type     string
		FilePath string
	}
)

// buildManifest converts a raw manifest object into the typed form, keeping
// only values of the expected type. Validation errors for the rest have
// already been recorded by the field checks.
func buildManifest(raw map[string]any) *Manifest {
	m := &Manifest{}
	m.Title, _ = asString(raw["title"])
	m.Version, _ = asString(raw["version"])
	m.Author, _ = asString(raw["author"])
	m.Description, _ = asString(raw["description"])
	m.Language, _ = asString(raw["language"])

	if modules, ok := raw["modules"].([]any); ok {
		for _, entry := range modules {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			mod := Module{}
			mod.ID, _ = asString(obj["id"])
			mod.Title, _ = asString(obj["title"])
			mod.Content, _ = asString(obj["content"])
			mod.Description, _ = asString(obj["description"])
			if order, ok := asNumber(obj["order"]); ok {
				mod.Order = &order
			}
			m.Modules = append(m.Modules, mod)
		}
	}

	if lessons, ok := raw["lessons"].([]any); ok {
		for _, entry := range lessons {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			l := Lesson{}
			l.ID, _ = asString(obj["id"])
			l.ModuleID, _ = asString(obj["moduleId"])
			l.Title, _ = asString(obj["title"])
			l.Type, _ = asString(obj["type"])
			l.FilePath, _ = asString(obj["filePath"])
			m.Lessons = append(m.Lessons, l)
		}
	}

	return m
}

// asString reports whether v holds a JSON string and returns it.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asNumber reports whether v holds a JSON number and returns it.
// encoding/json decodes every JSON number to float64.
func asNumber(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// isFalsy mirrors JSON falsiness for the "required field cannot be empty"
// check: null, "", 0, false, and empty arrays/objects all count as empty.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case float64:
		return val == 0
	case bool:
		return !val
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
