// SPDX-License-Identifier: MPL-2.0

package edpak

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Build creates an edpak archive from a course directory. The directory must
// contain a manifest.json at its root; its contents become the archive root
// (no wrapping directory). When outputPath is empty the archive is written
// next to the working directory as "<dirname>.edpak". The result is validated
// before Build returns; an archive that fails validation is removed and the
// findings are returned as the error.
func Build(courseDir, outputPath string) (string, error) {
	absDir, err := filepath.Abs(courseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve course directory: %w", err)
	}

	info, err := os.Stat(absDir)
	if err != nil {
		return "", fmt.Errorf("failed to stat course directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", courseDir)
	}

	if _, err := os.Stat(filepath.Join(absDir, ManifestFileName)); err != nil {
		return "", fmt.Errorf("course directory has no %s: %w", ManifestFileName, err)
	}

	if outputPath == "" {
		outputPath = filepath.Base(absDir) + FileSuffix
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	zipFile, err := os.Create(absOutput)
	if err != nil {
		return "", fmt.Errorf("failed to create archive: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)
	defer zipWriter.Close()

	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		relPath, err := filepath.Rel(absDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}
		if relPath == "." {
			return nil
		}
		entryName := filepath.ToSlash(relPath)

		if d.IsDir() {
			if _, err := zipWriter.Create(entryName + "/"); err != nil {
				return fmt.Errorf("failed to create directory entry: %w", err)
			}
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to get file info: %w", err)
		}
		header, err := zip.FileInfoHeader(fileInfo)
		if err != nil {
			return fmt.Errorf("failed to create file header: %w", err)
		}
		header.Name = entryName
		header.Method = zip.Deflate

		writer, err := zipWriter.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create archive entry: %w", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		if _, err := writer.Write(data); err != nil {
			return fmt.Errorf("failed to write file data: %w", err)
		}
		return nil
	})
	if err != nil {
		zipWriter.Close()
		zipFile.Close()
		os.Remove(absOutput)
		return "", fmt.Errorf("failed to build archive: %w", err)
	}

	// Flush the central directory before validating the result.
	if err := zipWriter.Close(); err != nil {
		os.Remove(absOutput)
		return "", fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := zipFile.Close(); err != nil {
		os.Remove(absOutput)
		return "", fmt.Errorf("failed to finalize archive: %w", err)
	}

	if result := Validate(absOutput); !result.Valid {
		os.Remove(absOutput)
		return "", fmt.Errorf("built archive is invalid: %s", strings.Join(result.Errors, "; "))
	}

	return absOutput, nil
}

// ExtractOptions contains options for extracting an edpak archive.
type ExtractOptions struct {
	// DestDir is the destination directory (defaults to the current directory).
	DestDir string
	// Overwrite allows replacing existing files in the destination.
	Overwrite bool
}

// Extract unpacks an edpak archive into a directory named after the archive
// (without the .edpak suffix) under the destination directory. Entry paths
// are checked against directory traversal before anything is written.
// Returns the path to the extracted course directory.
func Extract(archivePath string, opts ExtractOptions) (string, error) {
	destDir := opts.DestDir
	if destDir == "" {
		var err error
		destDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	absDestDir, err := filepath.Abs(destDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve destination directory: %w", err)
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	courseName := strings.TrimSuffix(filepath.Base(archivePath), FileSuffix)
	coursePath := filepath.Join(absDestDir, courseName)

	if _, err := os.Stat(coursePath); err == nil {
		if !opts.Overwrite {
			return "", fmt.Errorf("destination already exists at %s (use overwrite option to replace)", coursePath)
		}
		if err := os.RemoveAll(coursePath); err != nil {
			return "", fmt.Errorf("failed to remove existing destination: %w", err)
		}
	}
	if err := os.MkdirAll(coursePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create destination directory: %w", err)
	}

	for _, file := range zr.File {
		destPath := filepath.Join(coursePath, filepath.FromSlash(file.Name))

		relPath, err := filepath.Rel(coursePath, destPath)
		if err != nil || strings.HasPrefix(relPath, "..") {
			return "", fmt.Errorf("invalid path in archive: %s", file.Name)
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, file.Mode()); err != nil {
				return "", fmt.Errorf("failed to create directory: %w", err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return "", fmt.Errorf("failed to create parent directory: %w", err)
		}
		if err := extractFile(file, destPath); err != nil {
			return "", fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}
	}

	return coursePath, nil
}

// extractFile writes a single archive entry to destPath.
func extractFile(file *zip.File, destPath string) error {
	rc, err := file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	mode := file.Mode()
	if mode == 0 {
		mode = 0644
	}
	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, rc)
	return err
}

// ScaffoldOptions contains options for scaffolding a new course directory.
type ScaffoldOptions struct {
	// Name is the course directory name.
	Name string
	// ParentDir is where the directory is created (defaults to the current
	// directory).
	ParentDir string
	// Title is the course title (defaults to Name).
	Title string
	// Author is the manifest author (defaults to "unknown").
	Author string
}

// Scaffold creates a minimal course directory: a manifest.json with an empty
// modules array plus the standard asset directories. Returns the path to the
// created directory.
func Scaffold(opts ScaffoldOptions) (string, error) {
	if opts.Name == "" {
		return "", fmt.Errorf("course name cannot be empty")
	}

	parentDir := opts.ParentDir
	if parentDir == "" {
		var err error
		parentDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	absParentDir, err := filepath.Abs(parentDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve parent directory: %w", err)
	}

	coursePath := filepath.Join(absParentDir, opts.Name)
	if _, err := os.Stat(coursePath); err == nil {
		return "", fmt.Errorf("course directory already exists at %s", coursePath)
	}
	if err := os.MkdirAll(coursePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create course directory: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = opts.Name
	}
	author := opts.Author
	if author == "" {
		author = "unknown"
	}

	manifest := map[string]any{
		"title":   title,
		"version": "1.0.0",
		"author":  author,
		"modules": []any{},
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		os.RemoveAll(coursePath)
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(coursePath, ManifestFileName), append(data, '\n'), 0644); err != nil {
		os.RemoveAll(coursePath)
		return "", fmt.Errorf("failed to create %s: %w", ManifestFileName, err)
	}

	for _, dir := range DefaultAllowedDirs {
		if err := os.MkdirAll(filepath.Join(coursePath, dir), 0755); err != nil {
			os.RemoveAll(coursePath)
			return "", fmt.Errorf("failed to create %s directory: %w", dir, err)
		}
	}

	return coursePath, nil
}
