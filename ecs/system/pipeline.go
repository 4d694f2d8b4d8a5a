package system

import "github.com/milk9111/asciiknight/ecs"

// NewFrameScheduler returns the systems of one frame in their fixed order:
// input, player physics, attack timers, enemy physics, enemy AI, combat.
func NewFrameScheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerControllerSystem(),
		NewPlayerPhysicsSystem(),
		NewAttackSystem(),
		NewEnemyPhysicsSystem(),
		NewAISystem(),
		NewCombatSystem(),
	)
}
