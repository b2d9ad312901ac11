package app

import (
	"fmt"
	"log"

	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/embedded"
	"github.com/gonewx/spawner/pkg/entities"
	"github.com/gonewx/spawner/pkg/scenes"
	"github.com/gonewx/spawner/pkg/systems"
	"github.com/gonewx/spawner/pkg/utils"
)

// DefaultConfigPath 嵌入的默认配置文件
const DefaultConfigPath = "data/spawner.yaml"

// LoadConfig 加载生成器配置
// path 为空时读取嵌入的默认配置，否则从磁盘读取
func LoadConfig(path string) (*config.SpawnerConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载配置文件: %s", path)
		return config.LoadSpawnerConfig(path)
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config %s: %w", DefaultConfigPath, err)
	}
	log.Printf("[Config] 使用嵌入的默认配置: %s", DefaultConfigPath)
	return config.ParseSpawnerConfig(data)
}

// NewSpawnerScene 组装敌人工厂、生成系统和场景
// 窗口版与终端版共用同一套组装逻辑，只有 spritesheet 的来源不同
func NewSpawnerScene(cfg *config.SpawnerConfig, sheets map[string]*components.SpriteSheet, rng utils.RandomSource) (*scenes.SpawnerScene, error) {
	factory, err := entities.NewEnemyFactory(cfg, sheets, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create enemy factory: %w", err)
	}

	world := systems.NewEnemySpawnSystem(factory, rng, cfg.SpawnTable, cfg.Loop.SpawnIntervalMs)
	return scenes.NewSpawnerScene(world, cfg), nil
}
