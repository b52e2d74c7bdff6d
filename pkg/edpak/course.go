// SPDX-License-Identifier: MPL-2.0

package edpak

import "strings"

// validateCourseStructure performs the higher-level course checks for
// manifests that carry a lessons array. Manifests without one are treated as
// minimal and skip these checks entirely, so older producers keep passing
// basic structural validation.
func (v *validator) validateCourseStructure(manifest map[string]any) {
	value, present := manifest["lessons"]
	if !present {
		return
	}

	lessons, ok := value.([]any)
	if !ok {
		v.result.AddError("Field 'lessons' must be an array when present")
		return
	}
	if len(lessons) == 0 {
		v.result.AddError("Course defines a lessons array but it is empty")
		return
	}

	if desc, ok := asString(manifest["description"]); !ok || strings.TrimSpace(desc) == "" {
		v.result.AddWarning("Course description is missing or empty")
	}

	// moduleId -> lessons mapping, flagging malformed lesson entries along
	// the way.
	moduleLessons := make(map[string][]map[string]any)
	for idx, entry := range lessons {
		lesson, ok := entry.(map[string]any)
		if !ok {
			v.result.AddError("Lesson at index %d is not an object", idx)
			continue
		}
		moduleID, ok := asString(lesson["moduleId"])
		if !ok || moduleID == "" {
			v.result.AddError("Lesson at index %d missing valid 'moduleId'", idx)
			continue
		}
		moduleLessons[moduleID] = append(moduleLessons[moduleID], lesson)
	}

	if !v.hasCover(lessons) {
		v.result.AddWarning("Course cover image not found (no image lessons with valid filePath)")
	}

	modules, _ := manifest["modules"].([]any)
	for idx, entry := range modules {
		module, ok := entry.(map[string]any)
		if !ok {
			v.result.AddError("Module at index %d is not an object", idx)
			continue
		}

		moduleID, _ := asString(module["id"])
		title, _ := asString(module["title"])

		if value, present := module["title"]; present {
			if s, ok := asString(value); !ok || strings.TrimSpace(s) == "" {
				v.result.AddError("Module at index %d has an empty or invalid 'title'", idx)
			}
		}

		// A description is strongly recommended but not strictly required.
		if desc, ok := asString(module["description"]); !ok || strings.TrimSpace(desc) == "" {
			v.result.AddWarning("Module '%s' is missing a description", moduleID)
		}

		associated := moduleLessons[moduleID]
		if len(associated) == 0 {
			v.result.AddError("Module '%s' ('%s') has no lessons associated with it", moduleID, title)
			continue
		}

		quizzes := 0
		for _, lesson := range associated {
			if t, _ := asString(lesson["type"]); t == LessonTypeMultipleChoice {
				quizzes++
			}
		}
		if quizzes == 0 {
			v.result.AddWarning("Module '%s' ('%s') has no quiz lessons of type 'MultipleChoice'", moduleID, title)
		}

		coverFound := false
		for _, lesson := range associated {
			if t, _ := asString(lesson["type"]); t != LessonTypeImage {
				continue
			}
			if fp, ok := asString(lesson["filePath"]); ok && v.listing.contains(fp) {
				coverFound = true
				break
			}
		}
		if !coverFound {
			v.result.AddWarning("Module '%s' ('%s') has no image lessons with valid filePath (module cover image missing)", moduleID, title)
		}
	}
}

// hasCover reports whether any lesson is an image with a filePath that
// resolves to an archive entry, i.e. something usable as the course cover.
func (v *validator) hasCover(lessons []any) bool {
	for _, entry := range lessons {
		lesson, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if t, _ := asString(lesson["type"]); t != LessonTypeImage {
			continue
		}
		if fp, ok := asString(lesson["filePath"]); ok && fp != "" && v.listing.contains(fp) {
			return true
		}
	}
	return false
}
