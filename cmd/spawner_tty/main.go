// spawner-tty 在终端中运行敌人生成器
//
// 与窗口版共用配置、生成系统和场景，只是把绘制表面换成 tcell 字符网格。
// 按 Esc 或 Ctrl-C 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/spawner/pkg/app"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/ecs"
	"github.com/gonewx/spawner/pkg/embedded"
	"github.com/gonewx/spawner/pkg/entities"
	"github.com/gonewx/spawner/pkg/utils"
	"github.com/pkg/profile"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configPath = flag.String("config", "", "生成器配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	verbose    = flag.Bool("verbose", false, "将详细日志写入 spawner-tty.log")
	sound      = flag.Bool("sound", false, "生成敌人时播放提示音")
	overlay    = flag.Bool("overlay", false, "显示调试信息")
	cpuProfile = flag.Bool("cpuprofile", false, "将 CPU profile 写入当前目录")
)

func main() {
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	// 终端被 tcell 占用，日志只能写入文件
	if *verbose {
		logFile, err := os.Create("spawner-tty.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig 读取配置：-config 指定的文件，或工作目录下的 data/spawner.yaml，
// 两者都没有时使用内置默认值
func loadConfig() (*config.SpawnerConfig, error) {
	// 终端版不嵌入数据，从工作目录读取，与窗口版共用同一份配置文件
	embedded.Init(os.DirFS("."))

	if *configPath == "" && !embedded.Exists(app.DefaultConfigPath) {
		log.Printf("[SpawnerTTY] %s not found, using built-in defaults", app.DefaultConfigPath)
		return config.DefaultSpawnerConfig(), nil
	}
	return app.LoadConfig(*configPath)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if *overlay {
		cfg.Debug.Overlay = true
	}

	rng := utils.NewRandomSource(*seed)
	scene, err := app.NewSpawnerScene(cfg, entities.NewSpriteSheets(cfg), rng)
	if err != nil {
		return err
	}

	if *sound {
		blip, err := newSpawnBlip(cfg.Sound)
		if err != nil {
			// 没有声音也可以运行
			log.Printf("[SpawnerTTY] Audio initialization failed: %v", err)
		} else {
			defer blip.Close()
			scene.World().SetSpawnListener(func(ecs.EntityID, entities.Enemy) {
				blip.Play()
			})
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	newTerminal(screen, scene, cfg).run(frameInterval)
	return nil
}
