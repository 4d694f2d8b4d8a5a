package system

import (
	"github.com/milk9111/asciiknight/ecs"
	"github.com/milk9111/asciiknight/ecs/component"
)

// AISystem advances every active enemy's behaviour by one frame, in
// collection order.
type AISystem struct{}

func NewAISystem() *AISystem {
	return &AISystem{}
}

func (s *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for i := 0; i < w.Enemies.Len(); i++ {
		e := w.Enemies.At(i)
		if !e.Active {
			continue
		}

		switch v := e.Variant.(type) {
		case *component.WalkerState:
			updateWalker(w, e)
		case *component.JumperState:
			updateJumper(w, e)
		case *component.FlierState:
			updateFlier(w, i, e, v)
		case *component.CrawlerState:
			updateCrawler(w, e, v)
		case *component.BossState:
			updateBoss(w, e, v)
		}
	}
}
