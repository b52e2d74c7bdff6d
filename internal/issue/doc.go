// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context and a catalog of
// explainable validation-failure topics.
//
// ActionableError carries the operation, resource, and fix suggestions for
// failures the user can act on (config loading, packing, unpacking). The
// topic catalog backs `edpak explain`: each common validation failure has a
// markdown page rendered with glamour.
package issue
