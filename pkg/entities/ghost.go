package entities

import (
	"math"

	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/utils"
)

// Ghost 在表面上部从右向左飘动，叠加正弦上下摆动，半透明绘制
type Ghost struct {
	EnemyBase

	angle     float64 // 当前摆动角度(弧度)
	angleStep float64 // 每次更新增加的角度，不随时间缩放
	curve     float64 // 摆动幅度
	alpha     float64 // 绘制不透明度
}

// NewGhost 创建幽灵，出生在右边缘，高度在表面上部 heightRatio 范围内随机
func NewGhost(cfg config.EnemyConfig, ghostCfg config.GhostConfig, sheet *components.SpriteSheet, surfaceWidth, surfaceHeight float64, rng utils.RandomSource) *Ghost {
	g := &Ghost{
		EnemyBase: newEnemyBase(cfg, sheet),
		angleStep: ghostCfg.AngleStep,
		alpha:     ghostCfg.Alpha,
	}
	g.position.X = surfaceWidth
	g.position.Y = rng.Float64() * surfaceHeight * ghostCfg.HeightRatio
	g.velocity.VX = utils.RandRange(rng, cfg.MinSpeed, cfg.MaxSpeed)
	g.curve = rng.Float64() * ghostCfg.MaxCurve
	return g
}

// Type 返回敌人类型
func (g *Ghost) Type() EnemyType {
	return EnemyGhost
}

// Update 基础更新后叠加正弦摆动
func (g *Ghost) Update(deltaTime float64) {
	g.EnemyBase.Update(deltaTime)
	g.position.Y += math.Sin(g.angle) * g.curve
	g.angle += g.angleStep
}

// Draw 以半透明方式绘制，不透明度只作用于本次绘制
func (g *Ghost) Draw(surface render.Surface) {
	render.WithAlpha(surface, g.alpha, g.EnemyBase.Draw)
}

// Curve 返回摆动幅度
func (g *Ghost) Curve() float64 {
	return g.curve
}
