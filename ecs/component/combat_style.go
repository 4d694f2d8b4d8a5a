package component

import (
	"fmt"
	"strings"
)

// CombatStyle is chosen once before a run and never changes.
type CombatStyle uint8

const (
	// StyleCooldown gates each swing behind a cooldown; swings last long.
	StyleCooldown CombatStyle = iota + 1
	// StyleSpam lets every press replace the current swing with a short one.
	StyleSpam
)

func (s CombatStyle) String() string {
	switch s {
	case StyleCooldown:
		return "cooldown"
	case StyleSpam:
		return "spam"
	}
	return "unknown"
}

// ParseCombatStyle accepts "1"/"cooldown" and "2"/"spam".
func ParseCombatStyle(s string) (CombatStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "cooldown":
		return StyleCooldown, nil
	case "2", "spam":
		return StyleSpam, nil
	}
	return 0, fmt.Errorf("unknown combat style %q", s)
}
