// SPDX-License-Identifier: MPL-2.0

// Package edpak implements validation, packaging, and extraction of edpak
// archives: ZIP containers holding an e-learning course described by a
// root-level manifest.json.
//
// The central entry point is Validate (or ValidateWithOptions), which runs a
// fixed sequence of checks against an archive and returns a ValidationResult
// with accumulated errors and warnings. Errors make the archive invalid;
// warnings are advisory best-practice gaps and never affect validity.
//
// Archive contract:
//   - manifest.json at the archive root (UTF-8 JSON object)
//   - top-level directories restricted to images/, videos/, files/
//   - paths referenced by module "content" or lesson "filePath" fields must
//     match archive entry names exactly (no normalization)
//
// Build, Extract, and Scaffold round out the producer side: they create an
// archive from a course directory, unpack one, and scaffold a fresh course
// layout respectively.
package edpak
