package scenes

import (
	"fmt"

	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/systems"
)

// SpawnerScene 是唯一的场景：每帧清空表面，驱动敌人生成系统，
// 并在启用时绘制调试信息
type SpawnerScene struct {
	world        *systems.EnemySpawnSystem
	debugOverlay bool
}

// NewSpawnerScene 创建生成器场景
func NewSpawnerScene(world *systems.EnemySpawnSystem, cfg *config.SpawnerConfig) *SpawnerScene {
	return &SpawnerScene{
		world:        world,
		debugOverlay: cfg.Debug.Overlay,
	}
}

// World 返回场景驱动的敌人生成系统
func (s *SpawnerScene) World() *systems.EnemySpawnSystem {
	return s.world
}

// SetDebugOverlay 开关调试信息
func (s *SpawnerScene) SetDebugOverlay(enabled bool) {
	s.debugOverlay = enabled
}

// Update 更新世界，deltaTime 单位为毫秒
func (s *SpawnerScene) Update(deltaTime float64) {
	s.world.Update(deltaTime)
}

// Draw 清空表面后绘制所有敌人，最后绘制调试信息
func (s *SpawnerScene) Draw(surface render.Surface) {
	surface.Clear()
	s.world.Draw(surface)

	if s.debugOverlay {
		if textSurface, ok := surface.(render.TextSurface); ok {
			s.drawDebugOverlay(textSurface)
		}
	}
}

// drawDebugOverlay 绘制敌人数量和生成计时器
func (s *SpawnerScene) drawDebugOverlay(surface render.TextSurface) {
	current, target := s.world.Timer()
	lines := []string{
		fmt.Sprintf("enemies: %d", s.world.EnemyCount()),
		fmt.Sprintf("spawned: %d", s.world.SpawnedCount()),
		fmt.Sprintf("next spawn: %.0f/%.0fms", current, target),
	}

	for i, line := range lines {
		surface.DrawText(line, config.DebugOverlayX, config.DebugOverlayY+float64(i)*config.DebugOverlayLineHeight)
	}
}
