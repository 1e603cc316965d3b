package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneFileExt is appended to scene stems given on the command line
const SceneFileExt = ".txt"

// SceneSearchDirs are the directories searched for scene files, in order
var SceneSearchDirs = []string{"scenes", "../scenes", "."}

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name accepted by Load
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
}

// ListScenes scans dir for scene files and returns them sorted by name.
// A missing directory yields an empty list.
func ListScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+SceneFileExt))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Log warning but continue processing other files
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ListAllScenes returns the builtin scenes followed by the scene files found in the search directories
func ListAllScenes() ([]SceneInfo, error) {
	var all []SceneInfo
	for _, name := range BuiltinNames() {
		all = append(all, SceneInfo{
			ID:   name,
			Name: titleCase(name),
			Type: "builtin",
		})
	}

	seen := make(map[string]bool)
	for _, dir := range SceneSearchDirs {
		found, err := ListScenes(dir)
		if err != nil {
			return nil, err
		}
		for _, info := range found {
			if seen[info.ID] {
				continue
			}
			seen[info.ID] = true
			all = append(all, info)
		}
	}

	return all, nil
}

// ParseSceneMetadata extracts metadata from the leading comment block of a scene file
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       stem,
		Name:     titleCase(stem),
		Type:     "file",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// ResolveScenePath turns a scene name into an existing file path.
// Names without an extension get SceneFileExt appended; relative names are
// looked up in SceneSearchDirs.
func ResolveScenePath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty scene name")
	}

	candidate := name
	if filepath.Ext(candidate) == "" {
		candidate += SceneFileExt
	}

	if filepath.IsAbs(candidate) || strings.ContainsRune(candidate, filepath.Separator) {
		if _, err := os.Stat(candidate); err != nil {
			return "", fmt.Errorf("scene file not found: %w", err)
		}
		return candidate, nil
	}

	for _, dir := range SceneSearchDirs {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("scene file %q not found in %v: %w", candidate, SceneSearchDirs, os.ErrNotExist)
}

// titleCase converts a filename-style string to title case
// e.g., "single-sphere" -> "Single Sphere"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
