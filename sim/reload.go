package sim

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/asciiknight/ecs/system"
	"github.com/milk9111/asciiknight/prefabs"
)

// Reload applies an edited prefab file reported by a prefabs.Watcher.
// Tuning files replace the tuning unless the file is unchanged since the
// last reload; the active wave script is recompiled.
// Other scripts are ignored. On error the run keeps its current settings.
func (s *Simulation) Reload(path string) error {
	name := filepath.Base(path)
	switch {
	case prefabs.IsTuningFile(name):
		if name != prefabs.TuningFile {
			return nil
		}
		mod, onDisk := prefabs.ModTime(prefabs.TuningFile)
		if onDisk && mod.Equal(s.tuningMod) {
			return nil
		}
		t, err := prefabs.LoadTuningSpec()
		if err != nil {
			return err
		}
		if err := s.SetTuning(t); err != nil {
			return err
		}
		s.tuningMod = mod
		return nil
	case prefabs.IsScriptFile(name):
		current := s.world.Tuning.Waves.Script
		if current == "" || filepath.Base(current) != name {
			return nil
		}
		ws, err := system.LoadWaveScript(current)
		if err != nil {
			return err
		}
		s.SetWaveScript(ws)
		s.log.Info().Str("script", current).Msg("wave script reloaded")
		return nil
	}
	return fmt.Errorf("sim: cannot reload %s", name)
}
