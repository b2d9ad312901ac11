package main

import (
	"flag"
	"log"

	"github.com/gonewx/spawner/pkg/app"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

var (
	configPath = flag.String("config", "", "生成器配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	sound      = flag.Bool("sound", false, "生成敌人时播放提示音")
	cpuProfile = flag.Bool("cpuprofile", false, "将 CPU profile 写入当前目录")
)

func main() {
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Sound:      *sound,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	spawnerCfg := gameApp.SpawnerConfig()
	ebiten.SetWindowSize(int(spawnerCfg.Surface.Width), int(spawnerCfg.Surface.Height))
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(spawnerCfg.Loop.TPS)

	// 启动主循环，直到窗口关闭
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
