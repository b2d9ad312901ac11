// Package app 提供生成器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：窗口版通过 main.go 调用 NewApp()，
// 终端版 cmd/spawner_tty 复用 LoadConfig、NewSpawnerScene 和 FrameClock。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/ecs"
	"github.com/gonewx/spawner/pkg/entities"
	"github.com/gonewx/spawner/pkg/game"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// spawnSoundKey 合成提示音的缓存键
const spawnSoundKey = "spawn"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 生成器配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Sound 每次生成敌人时播放提示音
	Sound bool
}

// App 是生成器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	spawnerCfg   *config.SpawnerConfig
	surface      *render.EbitenSurface
	clock        *FrameClock
	start        time.Time
	verbose      bool
}

// NewApp 创建并初始化生成器应用
//
// 使用嵌入的默认配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	spawnerCfg, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	// 只有启用声音时才创建音频上下文
	var audioContext *audio.Context
	if cfg.Sound {
		audioContext = audio.NewContext(48000)
	}

	resourceManager := game.NewResourceManager(audioContext)

	sheets, err := resourceManager.LoadSpriteSheets(spawnerCfg)
	if err != nil {
		return nil, fmt.Errorf("精灵资源加载失败: %w", err)
	}

	rng := utils.NewRandomSource(cfg.Seed)
	scene, err := NewSpawnerScene(spawnerCfg, sheets, rng)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	if cfg.Sound {
		if key, err := loadSpawnSound(resourceManager, spawnerCfg.Sound); err != nil {
			log.Printf("[App] WARNING: 提示音不可用: %v", err)
		} else {
			scene.World().SetSpawnListener(func(ecs.EntityID, entities.Enemy) {
				resourceManager.PlaySoundEffect(key)
			})
		}
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	log.Printf("[App] Started with surface %.0fx%.0f, spawn interval %.0fms, seed %d",
		spawnerCfg.Surface.Width, spawnerCfg.Surface.Height, spawnerCfg.Loop.SpawnIntervalMs, cfg.Seed)

	return &App{
		sceneManager: sceneManager,
		spawnerCfg:   spawnerCfg,
		surface:      render.NewEbitenSurface(nil),
		clock:        NewFrameClock(spawnerCfg.Loop.MaxDeltaMs),
		start:        time.Now(),
		verbose:      cfg.Verbose,
	}, nil
}

// loadSpawnSound 优先加载配置的音效文件，失败时退回合成音，返回音效缓存键
func loadSpawnSound(rm *game.ResourceManager, sound config.SoundConfig) (string, error) {
	if sound.SpawnEffect != "" {
		_, err := rm.LoadSoundEffect(sound.SpawnEffect)
		if err == nil {
			return sound.SpawnEffect, nil
		}
		log.Printf("[App] WARNING: %v, using generated tone", err)
	}

	if _, err := rm.NewToneEffect(spawnSoundKey, sound.ToneHz, sound.ToneMs, sound.Volume); err != nil {
		return "", err
	}
	return spawnSoundKey, nil
}

// Update 更新生成器逻辑
// 每个 tick 调用一次，经过时间由单调时钟计算
func (a *App) Update() error {
	now := float64(time.Since(a.start).Microseconds()) / 1000
	a.sceneManager.Update(a.clock.Tick(now))
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.sceneManager.Draw(a.surface)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制窗口缩放时的 letterbox 颜色和滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑表面尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.spawnerCfg.Surface.Width), int(a.spawnerCfg.Surface.Height)
}

// SpawnerConfig 返回生效的生成器配置
func (a *App) SpawnerConfig() *config.SpawnerConfig {
	return a.spawnerCfg
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
