package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Dir is the on-disk directory whose files shadow the embedded copies.
const Dir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load returns a spec file, preferring the disk copy so tuning can be edited
// without rebuilding.
func Load(name string) ([]byte, error) {
	rel := specPath(name)
	if data, err := os.ReadFile(diskPath(rel)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(rel)
}

// LoadScript returns a tengo script by name, disk copy first.
func LoadScript(name string) ([]byte, error) {
	rel := scriptPath(name)
	if data, err := os.ReadFile(diskPath(rel)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(rel)
}

// ModTime reports the modification time of the disk copy, if there is one.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(specPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func specPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, Dir+"/")
	return s
}

func scriptPath(name string) string {
	s := specPath(name)
	s = strings.TrimPrefix(s, "scripts/")
	if s == "" {
		return ""
	}
	return path.Join("scripts", s)
}

func diskPath(rel string) string {
	return filepath.Join(Dir, filepath.FromSlash(rel))
}
