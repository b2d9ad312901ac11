package entities

import (
	"math"

	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/utils"
)

// Spider 从顶边上方垂下，到达下降上限后收丝返回，完全缩回后标记删除
type Spider struct {
	EnemyBase

	maxGoDown    float64 // 下降上限（Y 坐标）
	threadOffset float64 // 蛛丝末端相对蜘蛛顶部的偏移
}

// NewSpider 创建蜘蛛，水平位置随机，出生在顶边正上方
func NewSpider(cfg config.EnemyConfig, spiderCfg config.SpiderConfig, sheet *components.SpriteSheet, surfaceWidth float64, rng utils.RandomSource) *Spider {
	s := &Spider{
		EnemyBase:    newEnemyBase(cfg, sheet),
		threadOffset: spiderCfg.ThreadOffset,
	}
	s.position.X = rng.Float64() * surfaceWidth
	s.position.Y = -s.size.Height
	s.velocity.VX = 0
	s.velocity.VY = utils.RandRange(rng, cfg.MinSpeed, cfg.MaxSpeed)
	s.maxGoDown = utils.RandRange(rng, spiderCfg.MinDescent, spiderCfg.MaxDescent)
	return s
}

// Type 返回敌人类型
func (s *Spider) Type() EnemyType {
	return EnemySpider
}

// Update 基础更新（VX=0，只推进动画）后处理垂直运动
//
// 删除判断在移动之前进行：缩回到 -2*Height 以上的那一帧标记，
// 与其它敌人一样等待下一次生成时清理。
func (s *Spider) Update(deltaTime float64) {
	s.EnemyBase.Update(deltaTime)

	if s.position.Y < -s.size.Height*2 {
		s.markForDeletion()
	}

	s.position.Y += s.velocity.VY * deltaTime

	// 超过下降上限后只会向上，越界多帧也不会来回抖动
	if s.position.Y > s.maxGoDown {
		s.velocity.VY = -math.Abs(s.velocity.VY)
	}
}

// Draw 先画蛛丝再画蜘蛛
func (s *Spider) Draw(surface render.Surface) {
	threadX := s.position.X + s.size.Width/2
	surface.StrokeLine(threadX, 0, threadX, s.position.Y+s.threadOffset)
	s.EnemyBase.Draw(surface)
}

// MaxGoDown 返回下降上限
func (s *Spider) MaxGoDown() float64 {
	return s.maxGoDown
}
