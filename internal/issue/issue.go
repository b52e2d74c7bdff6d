// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Topic identifies an explainable validation-failure category.
type Topic string

const (
	TopicNotAZip               Topic = "not-a-zip"
	TopicMissingManifest       Topic = "missing-manifest"
	TopicInvalidJSON           Topic = "invalid-json"
	TopicUnexpectedDirectories Topic = "unexpected-directories"
	TopicMissingContent        Topic = "missing-content"
	TopicDuplicateModuleID     Topic = "duplicate-module-id"
	TopicCourseStructure       Topic = "course-structure"
	TopicConfig                Topic = "config"
)

type MarkdownMsg string

// Issue is a documented validation-failure topic with a markdown explanation.
type Issue struct {
	topic Topic       // key used by `edpak explain`
	mdMsg MarkdownMsg // markdown text that will be rendered
}

func (i *Issue) Topic() Topic {
	return i.topic
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render returns the glamour-rendered explanation for terminal display.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	notAZipIssue = &Issue{
		topic: TopicNotAZip,
		mdMsg: `
# File is not a valid ZIP archive

An edpak file is a ZIP container. The validator checks the file's ZIP
signature before opening it; this error means the file does not start with
one.

## Common causes:
- The file was truncated during download or copy
- The file is a different format renamed to .edpak
- The archive was produced by a tool that prepends data to the container

## Things you can try:
- Re-download or re-export the file
- Rebuild the archive from the course directory:
~~~
$ edpak pack ./my-course
~~~`,
	}

	missingManifestIssue = &Issue{
		topic: TopicMissingManifest,
		mdMsg: `
# Missing manifest.json

Every edpak archive must carry a manifest.json at its root. It is the single
source of truth for the course structure: title, version, author, and the
module list.

## Things you can try:
- Check the archive root (not a subdirectory) contains manifest.json:
~~~
$ unzip -l course.edpak | head
~~~

- Scaffold a fresh course layout to compare against:
~~~
$ edpak init my-course
~~~

## Minimal manifest:
~~~json
{
  "title": "My Course",
  "version": "1.0.0",
  "author": "Me",
  "modules": []
}
~~~`,
	}

	invalidJSONIssue = &Issue{
		topic: TopicInvalidJSON,
		mdMsg: `
# Invalid JSON in manifest.json

The manifest could not be parsed. The error message includes the parser's
position information for the first syntax problem.

## Common causes:
- Trailing commas (JSON forbids them)
- Single quotes instead of double quotes
- Unquoted field names
- A non-UTF-8 encoding

## Things you can try:
- Run the manifest through a JSON linter
- Re-export the course from the authoring tool`,
	}

	unexpectedDirectoriesIssue = &Issue{
		topic: TopicUnexpectedDirectories,
		mdMsg: `
# Unexpected directories in archive

Only three top-level asset directories are allowed in an edpak archive:

- ` + "`images/`" + `
- ` + "`videos/`" + `
- ` + "`files/`" + `

Anything else (for example ` + "`modules/`" + ` or ` + "`assets/`" + `) fails
validation. Structured content belongs in manifest.json, not in pre-rendered
directory trees.

## Things you can try:
- Move asset files under images/, videos/, or files/
- Move structural information into manifest.json module entries
- The error message lists every offending directory, so one fix pass suffices`,
	}

	missingContentIssue = &Issue{
		topic: TopicMissingContent,
		mdMsg: `
# Content file not found

A module's ` + "`content`" + ` field references a path that has no matching
archive entry. Paths are compared exactly, with no normalization: case,
leading ` + "`./`" + `, and separators all matter.

## Things you can try:
- List the archive entries and compare spelling exactly:
~~~
$ unzip -l course.edpak
~~~

- Use forward slashes in manifest paths
- Drop the ` + "`content`" + ` field if the module intentionally has no file`,
	}

	duplicateModuleIDIssue = &Issue{
		topic: TopicDuplicateModuleID,
		mdMsg: `
# Duplicate module ID

Module ids must be unique across the whole manifest. The first occurrence of
an id defines it; every later module carrying the same id is reported as a
duplicate.

## Things you can try:
- Give each module a distinct id
- If the authoring tool generates ids, re-export the course`,
	}

	courseStructureIssue = &Issue{
		topic: TopicCourseStructure,
		mdMsg: `
# Course structure findings

When a manifest carries a ` + "`lessons`" + ` array, the validator also
checks course-authoring completeness:

- every module must have at least one associated lesson (**error**)
- each lesson needs a valid ` + "`moduleId`" + ` (**error**)
- a module without a ` + "`MultipleChoice`" + ` quiz lesson gets a **warning**
- a module without an ` + "`Image`" + ` lesson whose ` + "`filePath`" + `
  resolves inside the archive (the module cover) gets a **warning**
- the course as a whole should have at least one such image lesson (the
  course cover) — **warning** otherwise
- missing course or module descriptions get **warnings**

Warnings never make the archive invalid; they flag gaps learners will notice.`,
	}

	configIssue = &Issue{
		topic: TopicConfig,
		mdMsg: `
# Failed to load configuration

Could not load the edpak configuration file.

## Configuration file locations:
- Linux: ~/.config/edpak/config.cue
- macOS: ~/Library/Application Support/edpak/config.cue
- Windows: %APPDATA%\edpak\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ edpak config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
ui: {
	color_scheme: "auto"
	verbose: false
}

validation: {
	require_content: false
	allowed_dirs: ["images", "videos", "files"]
}
~~~`,
	}

	issues = map[Topic]*Issue{
		notAZipIssue.Topic():               notAZipIssue,
		missingManifestIssue.Topic():       missingManifestIssue,
		invalidJSONIssue.Topic():           invalidJSONIssue,
		unexpectedDirectoriesIssue.Topic(): unexpectedDirectoriesIssue,
		missingContentIssue.Topic():        missingContentIssue,
		duplicateModuleIDIssue.Topic():     duplicateModuleIDIssue,
		courseStructureIssue.Topic():       courseStructureIssue,
		configIssue.Topic():                configIssue,
	}
)

// Topics returns all catalog topics in sorted order.
func Topics() []Topic {
	keys := maps.Keys(issues)
	slices.Sort(keys)
	return keys
}

// Get returns the issue for the given topic, or nil if unknown.
func Get(topic Topic) *Issue {
	return issues[topic]
}
