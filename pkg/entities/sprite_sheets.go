package entities

import (
	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
)

// NewSpriteSheets 按配置创建只带单元格尺寸、不带图像的 spritesheet
// 终端渲染和测试不需要真实图像
func NewSpriteSheets(cfg *config.SpawnerConfig) map[string]*components.SpriteSheet {
	sheets := make(map[string]*components.SpriteSheet, len(cfg.Sprites))
	for name, sprite := range cfg.Sprites {
		sheets[name] = &components.SpriteSheet{
			Name:       name,
			CellWidth:  sprite.CellWidth,
			CellHeight: sprite.CellHeight,
		}
	}
	return sheets
}
