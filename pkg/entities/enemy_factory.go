package entities

import (
	"fmt"

	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/utils"
)

// EnemyFactory 根据配置创建敌人
//
// 所有随机参数都从同一个随机源抽取，抽取顺序固定：
//   - Worm:   速度
//   - Ghost:  高度、速度、摆动幅度
//   - Spider: 水平位置、下降速度、下降上限
type EnemyFactory struct {
	config *config.SpawnerConfig
	sheets map[string]*components.SpriteSheet
	rng    utils.RandomSource
}

// NewEnemyFactory 创建敌人工厂
//
// 参数:
//   - cfg: 生成器配置
//   - sheets: 资源名 -> spritesheet，至少包含 spawnTable 中每种敌人引用的资源
//   - rng: 随机源
//
// 返回:
//   - *EnemyFactory: 工厂实例
//   - error: spawnTable 中有未知类型或缺少 spritesheet 时返回错误
func NewEnemyFactory(cfg *config.SpawnerConfig, sheets map[string]*components.SpriteSheet, rng utils.RandomSource) (*EnemyFactory, error) {
	f := &EnemyFactory{
		config: cfg,
		sheets: sheets,
		rng:    rng,
	}

	for _, name := range cfg.SpawnTable {
		if _, _, err := f.lookup(EnemyType(name)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// NewEnemy 创建指定类型的敌人
func (f *EnemyFactory) NewEnemy(enemyType EnemyType) (Enemy, error) {
	enemyCfg, sheet, err := f.lookup(enemyType)
	if err != nil {
		return nil, err
	}

	width, height := f.config.Surface.Width, f.config.Surface.Height

	switch enemyType {
	case EnemyWorm:
		return NewWorm(enemyCfg, sheet, width, height, f.rng), nil
	case EnemyGhost:
		return NewGhost(enemyCfg, f.config.Ghost, sheet, width, height, f.rng), nil
	case EnemySpider:
		return NewSpider(enemyCfg, f.config.Spider, sheet, width, f.rng), nil
	}

	return nil, fmt.Errorf("unknown enemy type: %s", enemyType)
}

func (f *EnemyFactory) lookup(enemyType EnemyType) (config.EnemyConfig, *components.SpriteSheet, error) {
	switch enemyType {
	case EnemyWorm, EnemyGhost, EnemySpider:
	default:
		return config.EnemyConfig{}, nil, fmt.Errorf("unknown enemy type: %s", enemyType)
	}

	enemyCfg, ok := f.config.Enemies[string(enemyType)]
	if !ok {
		return config.EnemyConfig{}, nil, fmt.Errorf("no config for enemy type: %s", enemyType)
	}

	sheet, ok := f.sheets[enemyCfg.Sprite]
	if !ok || sheet == nil {
		return config.EnemyConfig{}, nil, fmt.Errorf("sprite sheet %q not loaded for enemy type %s", enemyCfg.Sprite, enemyType)
	}

	return enemyCfg, sheet, nil
}
