// Package fonts finds the optional overlay font under assets/fonts.
package fonts

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd), so
// the lookup works from the repo root and from cmd/village.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no fonts and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Candidates returns the search terms tried in order: the name itself, its first path
// segment, the part before the first hyphen and the name without extension.
// "Inter/Inter-Regular.ttf" -> ["Inter/Inter-Regular.ttf", "Inter", "Inter/Inter", "Inter/Inter-Regular"].
func Candidates(name string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	add(name)
	if i := strings.IndexAny(name, "/\\"); i > 0 {
		add(name[:i])
	}
	if i := strings.Index(name, "-"); i > 0 {
		add(name[:i])
	}
	if isFont(name) {
		add(name[:len(name)-len(filepath.Ext(name))])
	}
	return out
}

// Find searches dirs (BaseDirs when none are given) for a font matching name, trying each
// of Candidates(name) in turn. When several files match, one containing "regular" wins.
// It returns the full path, or os.ErrNotExist.
func Find(name string, dirs ...string) (string, error) {
	if len(dirs) == 0 {
		dirs = BaseDirs()
	}
	for _, term := range Candidates(name) {
		if full, ok := find(normalize(term), dirs); ok {
			return full, nil
		}
	}
	return "", os.ErrNotExist
}

func find(norm string, dirs []string) (string, bool) {
	if norm == "" {
		return "", false
	}
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, true
		}
	}
	return matches[0], true
}
