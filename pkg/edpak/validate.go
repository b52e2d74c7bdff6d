// SPDX-License-Identifier: MPL-2.0

package edpak

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

type (
	// ValidationResult contains the outcome of validating an edpak archive.
	// Valid is true iff no errors were recorded; warnings never affect it.
	// Message order reflects check execution order, not severity.
	ValidationResult struct {
		// Valid is true if the archive passed all hard checks.
		Valid bool
		// Errors are the hard violations that make the archive invalid.
		Errors []string
		// Warnings are advisory best-practice gaps.
		Warnings []string
		// Manifest is the typed manifest, retained for caller introspection.
		// Nil when the manifest was absent or unparseable.
		Manifest *Manifest
	}

	// Options tunes validation behavior. The zero value selects the standard
	// (permissive) edpak rules.
	Options struct {
		// RequireContent makes the module "content" field required, matching
		// producers that emit a content file per module.
		RequireContent bool
		// AllowedDirs overrides the top-level directory allow-list.
		// Nil selects DefaultAllowedDirs.
		AllowedDirs []string
	}
)

// AddError records a hard violation and marks the result invalid.
func (r *ValidationResult) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

// AddWarning records an advisory finding.
func (r *ValidationResult) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// validator threads the accumulating result and archive listing through the
// individual checks so each check stays independently testable.
type validator struct {
	result  *ValidationResult
	opts    Options
	listing *archiveListing
}

// Validate checks the edpak archive at path against the standard rules.
func Validate(path string) *ValidationResult {
	return ValidateWithOptions(path, Options{})
}

// ValidateWithOptions checks the edpak archive at path. Checks run in a fixed
// sequence and accumulate every violation they can observe; the run only
// stops early where a later check has no valid input left to inspect
// (missing file, broken container, missing or unparseable manifest).
func ValidateWithOptions(path string, opts Options) *ValidationResult {
	if opts.AllowedDirs == nil {
		opts.AllowedDirs = DefaultAllowedDirs
	}

	v := &validator{
		result: &ValidationResult{Valid: true},
		opts:   opts,
	}

	if !strings.HasSuffix(path, FileSuffix) {
		v.result.AddError("File must have %s extension", FileSuffix)
	}

	if _, err := os.Stat(path); err != nil {
		v.result.AddError("File not found: %s", path)
		return v.result
	}

	if !IsZipFile(path) {
		v.result.AddError("File is not a valid ZIP archive")
		return v.result
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		v.result.AddError("Error reading ZIP file: %s", err)
		return v.result
	}
	defer zr.Close()

	v.listing = newArchiveListing(&zr.Reader)
	v.validateContents(&zr.Reader)

	return v.result
}

// validateContents inspects the opened archive: directory layout first
// (independent of the manifest), then the manifest itself.
func (v *validator) validateContents(zr *zip.Reader) {
	v.validateDirectories()

	if !v.listing.contains(ManifestFileName) {
		v.result.AddError("Missing required manifest.json file in root directory")
		return
	}

	data, err := readEntry(zr, ManifestFileName)
	if err != nil {
		v.result.AddError("Error reading manifest.json: %s", err)
		return
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		v.result.AddError("Invalid JSON in manifest.json: %s", err)
		return
	}

	manifest, ok := raw.(map[string]any)
	if !ok {
		for _, field := range requiredManifestFields {
			v.result.AddError("Missing required field in manifest: %s", field)
		}
		return
	}

	v.result.Manifest = buildManifest(manifest)
	v.validateManifest(manifest)
}

// validateDirectories enforces the top-level directory allow-list. All
// offending names are reported as one combined error, sorted and
// de-duplicated, so producers see the full fix in a single run.
func (v *validator) validateDirectories() {
	allowed := make(map[string]struct{}, len(v.opts.AllowedDirs))
	for _, dir := range v.opts.AllowedDirs {
		allowed[dir] = struct{}{}
	}

	found := make(map[string]struct{})
	for _, name := range v.listing.names {
		if i := strings.Index(name, "/"); i > 0 {
			found[name[:i]] = struct{}{}
		}
	}

	var unexpected []string
	for dir := range found {
		if _, ok := allowed[dir]; !ok {
			unexpected = append(unexpected, dir)
		}
	}
	if len(unexpected) == 0 {
		return
	}
	sort.Strings(unexpected)

	v.result.AddError("Unexpected directories in archive: %s (only %s directories are allowed)",
		strings.Join(unexpected, ", "), quoteList(v.opts.AllowedDirs))
}

// validateManifest runs the manifest field/type checks and dispatches the
// module and course-structure checks.
func (v *validator) validateManifest(manifest map[string]any) {
	for _, field := range requiredManifestFields {
		value, present := manifest[field]
		if !present {
			v.result.AddError("Missing required field in manifest: %s", field)
		} else if field != "modules" && isFalsy(value) {
			// An empty modules array is permitted (warned about below),
			// empty strings are not.
			v.result.AddError("Required field '%s' cannot be empty", field)
		}
	}

	for _, field := range []string{"title", "version", "author", "description", "language"} {
		if value, present := manifest[field]; present {
			if _, ok := asString(value); !ok {
				v.result.AddError("Field '%s' must be a string", field)
			}
		}
	}

	if value, present := manifest["modules"]; present {
		modules, ok := value.([]any)
		if !ok {
			v.result.AddError("Field 'modules' must be an array")
		} else {
			if len(modules) == 0 {
				v.result.AddWarning("No modules defined in manifest")
			}
			v.validateModules(modules)
		}
	}

	v.validateCourseStructure(manifest)
}

// validateModules checks each module entry: required fields, id uniqueness,
// field types, and content references against the archive listing. The first
// occurrence of an id wins; every later occurrence is a duplicate.
func (v *validator) validateModules(modules []any) {
	required := []string{"id", "title"}
	if v.opts.RequireContent {
		required = append(required, "content")
	}

	seen := make(map[string]struct{})
	for idx, entry := range modules {
		module, ok := entry.(map[string]any)
		if !ok {
			v.result.AddError("Module at index %d is not an object", idx)
			continue
		}

		for _, field := range required {
			if _, present := module[field]; !present {
				v.result.AddError("Module at index %d missing required field: %s", idx, field)
			}
		}

		if value, present := module["id"]; present {
			if id, ok := asString(value); !ok {
				v.result.AddError("Module at index %d: 'id' must be a string", idx)
			} else if _, dup := seen[id]; dup {
				v.result.AddError("Duplicate module ID: %s", id)
			} else {
				seen[id] = struct{}{}
			}
		}

		if value, present := module["title"]; present {
			if _, ok := asString(value); !ok {
				v.result.AddError("Module at index %d: 'title' must be a string", idx)
			}
		}

		if value, present := module["content"]; present {
			if content, ok := asString(value); !ok {
				v.result.AddError("Module at index %d: 'content' must be a string", idx)
			} else if !v.listing.contains(content) {
				v.result.AddError("Module at index %d: content file not found: %s", idx, content)
			}
		}

		if value, present := module["order"]; present {
			if _, ok := asNumber(value); !ok {
				v.result.AddError("Module at index %d: 'order' must be a number", idx)
			}
		}
	}
}

// quoteList renders a directory list as "'a', 'b', and 'c'" for error text.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " and " + quoted[1]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
	}
}
