package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnerConfig 敌人生成器配置
//
// 配置文件位置: data/spawner.yaml（默认配置嵌入在程序中）
//
// 解析时以 DefaultSpawnerConfig() 为基础，文件中出现的字段覆盖默认值。
// 注意：sprites/enemies 中的每个条目会被整体替换，必须写全。
type SpawnerConfig struct {
	Surface    SurfaceConfig           `yaml:"surface"`    // 绘制表面尺寸
	Loop       LoopConfig              `yaml:"loop"`       // 主循环参数
	SpawnTable []string                `yaml:"spawnTable"` // 生成类型表，每次生成从中均匀随机选取
	Sprites    map[string]SpriteConfig `yaml:"sprites"`    // 资源名 -> spritesheet 配置
	Enemies    map[string]EnemyConfig  `yaml:"enemies"`    // 敌人类型 -> 通用参数
	Ghost      GhostConfig             `yaml:"ghost"`      // 幽灵专属参数
	Spider     SpiderConfig            `yaml:"spider"`     // 蜘蛛专属参数
	Sound      SoundConfig             `yaml:"sound"`      // 生成提示音
	Debug      DebugConfig             `yaml:"debug"`      // 调试选项
}

// SurfaceConfig 绘制表面尺寸（逻辑像素）
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoopConfig 主循环参数
type LoopConfig struct {
	SpawnIntervalMs float64 `yaml:"spawnIntervalMs"` // 生成间隔(毫秒)，计时器严格超过该值时生成
	MaxDeltaMs      float64 `yaml:"maxDeltaMs"`      // 单帧经过时间上限(毫秒)
	TPS             int     `yaml:"tps"`             // 每秒更新次数
}

// SpriteConfig spritesheet 资源配置
//
// 帧横向排列，第 i 帧位于 (i*CellWidth, 0, CellWidth, CellHeight)。
type SpriteConfig struct {
	Path       string  `yaml:"path"`       // 图像文件路径，文件缺失时可使用占位图
	CellWidth  float64 `yaml:"cellWidth"`  // 单帧宽度
	CellHeight float64 `yaml:"cellHeight"` // 单帧高度
	Frames     int     `yaml:"frames"`     // 帧数（仅用于生成占位图）
}

// EnemyConfig 各类敌人共用的参数
type EnemyConfig struct {
	Sprite          string  `yaml:"sprite"`          // 使用的 spritesheet 名称
	Scale           float64 `yaml:"scale"`           // 绘制尺寸 = 单元格尺寸 * Scale
	MinSpeed        float64 `yaml:"minSpeed"`        // 速度下限(表面单位/毫秒)
	MaxSpeed        float64 `yaml:"maxSpeed"`        // 速度上限(不含)
	MaxFrame        int     `yaml:"maxFrame"`        // 最后一帧索引
	FrameIntervalMs float64 `yaml:"frameIntervalMs"` // 每帧持续时间(毫秒)
}

// GhostConfig 幽灵专属参数
type GhostConfig struct {
	Alpha       float64 `yaml:"alpha"`       // 绘制不透明度
	AngleStep   float64 `yaml:"angleStep"`   // 每次更新增加的摆动角度(弧度)，不随时间缩放
	MaxCurve    float64 `yaml:"maxCurve"`    // 摆动幅度上限(不含)
	HeightRatio float64 `yaml:"heightRatio"` // 出生高度范围占表面高度的比例
}

// SpiderConfig 蜘蛛专属参数
type SpiderConfig struct {
	MinDescent   float64 `yaml:"minDescent"`   // 下降上限的最小值
	MaxDescent   float64 `yaml:"maxDescent"`   // 下降上限的最大值(不含)
	ThreadOffset float64 `yaml:"threadOffset"` // 蛛丝末端相对蜘蛛顶部的偏移
}

// SoundConfig 生成提示音参数（仅在 -sound 启用时使用）
type SoundConfig struct {
	SpawnEffect string  `yaml:"spawnEffect"` // 音效文件(.mp3/.ogg)，为空或加载失败时使用合成音
	ToneHz      float64 `yaml:"toneHz"`      // 合成音频率
	ToneMs      float64 `yaml:"toneMs"`      // 合成音时长(毫秒)
	Volume      float64 `yaml:"volume"`      // 音量 [0, 1]
}

// DebugConfig 调试选项
type DebugConfig struct {
	Overlay            bool `yaml:"overlay"`            // 是否绘制调试信息
	PlaceholderSprites bool `yaml:"placeholderSprites"` // 图像缺失时是否生成占位图
}

// DefaultSpawnerConfig 返回默认配置
func DefaultSpawnerConfig() *SpawnerConfig {
	return &SpawnerConfig{
		Surface: SurfaceConfig{
			Width:  DefaultSurfaceWidth,
			Height: DefaultSurfaceHeight,
		},
		Loop: LoopConfig{
			SpawnIntervalMs: 1000,
			MaxDeltaMs:      100,
			TPS:             DefaultTPS,
		},
		SpawnTable: []string{"worm", "ghost", "spider"},
		Sprites: map[string]SpriteConfig{
			"worm":   {Path: "assets/images/enemy_worm.png", CellWidth: 229, CellHeight: 171, Frames: 6},
			"ghost":  {Path: "assets/images/enemy_ghost.png", CellWidth: 261, CellHeight: 209, Frames: 6},
			"spider": {Path: "assets/images/enemy_spider.png", CellWidth: 310, CellHeight: 174, Frames: 6},
		},
		Enemies: map[string]EnemyConfig{
			"worm":   {Sprite: "worm", Scale: 0.5, MinSpeed: 0.1, MaxSpeed: 0.2, MaxFrame: 5, FrameIntervalMs: 100},
			"ghost":  {Sprite: "ghost", Scale: 0.5, MinSpeed: 0.1, MaxSpeed: 0.2, MaxFrame: 5, FrameIntervalMs: 100},
			"spider": {Sprite: "spider", Scale: 0.5, MinSpeed: 0.1, MaxSpeed: 0.2, MaxFrame: 5, FrameIntervalMs: 100},
		},
		Ghost: GhostConfig{
			Alpha:       0.7,
			AngleStep:   0.04,
			MaxCurve:    3,
			HeightRatio: 0.6,
		},
		Spider: SpiderConfig{
			MinDescent:   100,
			MaxDescent:   300,
			ThreadOffset: 10,
		},
		Sound: SoundConfig{
			ToneHz: 660,
			ToneMs: 60,
			Volume: 0.3,
		},
		Debug: DebugConfig{
			Overlay:            false,
			PlaceholderSprites: true,
		},
	}
}

// LoadSpawnerConfig 从 YAML 文件加载生成器配置
func LoadSpawnerConfig(filePath string) (*SpawnerConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawner config file: %w", err)
	}

	return ParseSpawnerConfig(data)
}

// ParseSpawnerConfig 解析 YAML 数据并验证
func ParseSpawnerConfig(data []byte) (*SpawnerConfig, error) {
	config := DefaultSpawnerConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse spawner config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spawner config: %w", err)
	}

	return config, nil
}

// Validate 验证配置的有效性
func (c *SpawnerConfig) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %.1fx%.1f", c.Surface.Width, c.Surface.Height)
	}

	if c.Loop.SpawnIntervalMs < 0 {
		return fmt.Errorf("loop.spawnIntervalMs must be >= 0, got %.1f", c.Loop.SpawnIntervalMs)
	}
	if c.Loop.MaxDeltaMs <= 0 {
		return fmt.Errorf("loop.maxDeltaMs must be > 0, got %.1f", c.Loop.MaxDeltaMs)
	}
	if c.Loop.TPS <= 0 {
		return fmt.Errorf("loop.tps must be > 0, got %d", c.Loop.TPS)
	}

	for name, sprite := range c.Sprites {
		if sprite.CellWidth <= 0 || sprite.CellHeight <= 0 {
			return fmt.Errorf("sprite %s cell size must be positive, got %.1fx%.1f", name, sprite.CellWidth, sprite.CellHeight)
		}
		if sprite.Frames < 0 {
			return fmt.Errorf("sprite %s frames must be >= 0, got %d", name, sprite.Frames)
		}
	}

	if len(c.SpawnTable) == 0 {
		return fmt.Errorf("spawnTable cannot be empty")
	}

	for _, enemyType := range c.SpawnTable {
		if enemyType == "" {
			return fmt.Errorf("enemy type in spawnTable cannot be empty")
		}
		if _, ok := c.Enemies[enemyType]; !ok {
			return fmt.Errorf("spawnTable references unknown enemy type %s", enemyType)
		}
	}

	for enemyType, enemy := range c.Enemies {
		if _, ok := c.Sprites[enemy.Sprite]; !ok {
			return fmt.Errorf("enemy %s references unknown sprite %q", enemyType, enemy.Sprite)
		}
		if enemy.Scale <= 0 {
			return fmt.Errorf("enemy %s scale must be > 0, got %.2f", enemyType, enemy.Scale)
		}
		if enemy.MinSpeed > enemy.MaxSpeed {
			return fmt.Errorf("enemy %s speed range invalid: min(%.2f) > max(%.2f)", enemyType, enemy.MinSpeed, enemy.MaxSpeed)
		}
		if enemy.MaxFrame < 0 {
			return fmt.Errorf("enemy %s maxFrame must be >= 0, got %d", enemyType, enemy.MaxFrame)
		}
		if enemy.FrameIntervalMs < 0 {
			return fmt.Errorf("enemy %s frameIntervalMs must be >= 0, got %.1f", enemyType, enemy.FrameIntervalMs)
		}
	}

	if c.Ghost.Alpha < 0 || c.Ghost.Alpha > 1 {
		return fmt.Errorf("ghost.alpha must be between 0 and 1, got %.2f", c.Ghost.Alpha)
	}
	if c.Ghost.MaxCurve < 0 {
		return fmt.Errorf("ghost.maxCurve must be >= 0, got %.2f", c.Ghost.MaxCurve)
	}
	if c.Ghost.HeightRatio < 0 || c.Ghost.HeightRatio > 1 {
		return fmt.Errorf("ghost.heightRatio must be between 0 and 1, got %.2f", c.Ghost.HeightRatio)
	}

	if c.Sound.ToneHz <= 0 || c.Sound.ToneMs <= 0 {
		return fmt.Errorf("sound tone must be positive, got %.1fHz for %.1fms", c.Sound.ToneHz, c.Sound.ToneMs)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume must be between 0 and 1, got %.2f", c.Sound.Volume)
	}

	if c.Spider.MinDescent > c.Spider.MaxDescent {
		return fmt.Errorf("spider descent range invalid: min(%.1f) > max(%.1f)", c.Spider.MinDescent, c.Spider.MaxDescent)
	}

	return nil
}
