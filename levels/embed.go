package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the arena used when no level is requested.
const DefaultLevel = "arena.json"

// Level describes an arena layout. The outer border is always wall; only the
// interior platforms are listed.
type Level struct {
	Name      string     `json:"name"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Platforms []Platform `json:"platforms"`
	SpawnX    int        `json:"spawn_x"`
	SpawnY    int        `json:"spawn_y"`
}

// Platform is a horizontal one-way segment on Row covering columns [From, To).
type Platform struct {
	Row  int `json:"row"`
	From int `json:"from"`
	To   int `json:"to"`
}

// Validate checks the layout fits inside its own border.
func (l *Level) Validate() error {
	if l.Width < 3 || l.Height < 3 {
		return fmt.Errorf("invalid level dimensions: %dx%d", l.Width, l.Height)
	}
	for i, p := range l.Platforms {
		if p.Row <= 0 || p.Row >= l.Height-1 {
			return fmt.Errorf("platform %d: row %d outside interior", i, p.Row)
		}
		if p.From >= p.To {
			return fmt.Errorf("platform %d: empty span [%d,%d)", i, p.From, p.To)
		}
	}
	if l.SpawnX <= 0 || l.SpawnX >= l.Width-1 || l.SpawnY <= 0 || l.SpawnY >= l.Height-1 {
		return fmt.Errorf("spawn (%d,%d) outside interior", l.SpawnX, l.SpawnY)
	}
	return nil
}

// LoadLevelFromFS reads and validates an embedded level by file name.
func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

// Names lists the embedded level files.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
