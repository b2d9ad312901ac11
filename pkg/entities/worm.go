package entities

import (
	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/utils"
)

// Worm 沿底边从右向左爬行，没有垂直运动，使用基础更新和绘制
type Worm struct {
	EnemyBase
}

// NewWorm 创建蠕虫，出生在表面右边缘、贴住底边
func NewWorm(cfg config.EnemyConfig, sheet *components.SpriteSheet, surfaceWidth, surfaceHeight float64, rng utils.RandomSource) *Worm {
	w := &Worm{EnemyBase: newEnemyBase(cfg, sheet)}
	w.position.X = surfaceWidth
	w.position.Y = surfaceHeight - w.size.Height
	w.velocity.VX = utils.RandRange(rng, cfg.MinSpeed, cfg.MaxSpeed)
	return w
}

// Type 返回敌人类型
func (w *Worm) Type() EnemyType {
	return EnemyWorm
}
