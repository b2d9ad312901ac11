package entities

import (
	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/ecs"
	"github.com/gonewx/spawner/pkg/render"
)

// EnemyType 敌人类型标识，与配置文件中的 spawnTable 条目一致
type EnemyType string

const (
	EnemyWorm   EnemyType = "worm"
	EnemyGhost  EnemyType = "ghost"
	EnemySpider EnemyType = "spider"
)

// Enemy 是所有敌人共同的更新/绘制契约
//
// 敌人集合是封闭的（Worm、Ghost、Spider），每个变体嵌入一层 EnemyBase，
// 只覆盖 Update 和/或 Draw。
type Enemy interface {
	ecs.Entity

	// Type 返回敌人类型
	Type() EnemyType

	// Update 推进位置和动画，deltaTime 单位为毫秒
	Update(deltaTime float64)

	// Draw 将当前帧绘制到 surface，不修改任何状态
	Draw(surface render.Surface)

	// Position 返回左上角坐标
	Position() (x, y float64)

	// Size 返回绘制尺寸
	Size() (width, height float64)

	// Frame 返回当前动画帧索引和最大帧索引
	Frame() (current, max int)
}

// EnemyBase 所有敌人共享的状态和默认行为
//
// 位置和动画状态只由敌人自己的 Update 修改；尺寸在构造后不变；
// 删除标记只会从 false 变为 true。
type EnemyBase struct {
	position  components.PositionComponent
	velocity  components.VelocityComponent
	size      components.SizeComponent
	animation components.AnimationComponent
	sprite    *components.SpriteSheet

	markedForDeletion bool
}

func newEnemyBase(cfg config.EnemyConfig, sheet *components.SpriteSheet) EnemyBase {
	return EnemyBase{
		size: components.NewSizeComponent(sheet.CellWidth, sheet.CellHeight, cfg.Scale),
		animation: components.AnimationComponent{
			MaxFrame:      cfg.MaxFrame,
			FrameInterval: cfg.FrameIntervalMs,
		},
		sprite: sheet,
	}
}

// Update 基础更新：水平向左漂移，完全离开左边缘后标记删除，推进动画
func (e *EnemyBase) Update(deltaTime float64) {
	e.position.X -= e.velocity.VX * deltaTime
	if e.position.X < -e.size.Width {
		e.markForDeletion()
	}
	e.animation.Advance(deltaTime)
}

// Draw 将当前动画帧对应的单元格绘制到实体的位置和尺寸上
func (e *EnemyBase) Draw(surface render.Surface) {
	src := render.Rect{
		X: float64(e.animation.CurrentFrame) * e.sprite.CellWidth,
		Y: 0,
		W: e.sprite.CellWidth,
		H: e.sprite.CellHeight,
	}
	dst := render.Rect{
		X: e.position.X,
		Y: e.position.Y,
		W: e.size.Width,
		H: e.size.Height,
	}
	surface.DrawSprite(e.sprite, src, dst)
}

// IsMarkedForDeletion 是否已标记删除
func (e *EnemyBase) IsMarkedForDeletion() bool {
	return e.markedForDeletion
}

func (e *EnemyBase) markForDeletion() {
	e.markedForDeletion = true
}

// Position 返回左上角坐标
func (e *EnemyBase) Position() (x, y float64) {
	return e.position.X, e.position.Y
}

// Velocity 返回当前速度
func (e *EnemyBase) Velocity() (vx, vy float64) {
	return e.velocity.VX, e.velocity.VY
}

// Size 返回绘制尺寸
func (e *EnemyBase) Size() (width, height float64) {
	return e.size.Width, e.size.Height
}

// Frame 返回当前动画帧索引和最大帧索引
func (e *EnemyBase) Frame() (current, max int) {
	return e.animation.CurrentFrame, e.animation.MaxFrame
}

// Sprite 返回使用的 spritesheet
func (e *EnemyBase) Sprite() *components.SpriteSheet {
	return e.sprite
}
