// check_config 校验一个或多个生成器配置文件
//
// 用法:
//
//	go run ./cmd/check_config data/spawner.yaml my_spawner.yaml
//
// 不带参数时校验 data/spawner.yaml。
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/gonewx/spawner/pkg/app"
	"github.com/gonewx/spawner/pkg/config"
)

func main() {
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{app.DefaultConfigPath}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadSpawnerConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s\n", path)
		printSummary(cfg)
	}

	if failed > 0 {
		fmt.Printf("❌ %d/%d 个配置文件无效\n", failed, len(paths))
		os.Exit(1)
	}
}

func printSummary(cfg *config.SpawnerConfig) {
	fmt.Printf("   表面: %.0fx%.0f, 生成间隔: %.0fms, TPS: %d\n",
		cfg.Surface.Width, cfg.Surface.Height, cfg.Loop.SpawnIntervalMs, cfg.Loop.TPS)

	// 统计生成类型表中各类型的出现概率
	counts := make(map[string]int)
	for _, name := range cfg.SpawnTable {
		counts[name]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		enemy := cfg.Enemies[name]
		sprite := cfg.Sprites[enemy.Sprite]
		fmt.Printf("   %-7s %5.1f%%  尺寸 %.1fx%.1f  速度 [%.2f, %.2f)  帧 0-%d/%.0fms\n",
			name, float64(counts[name])*100/float64(len(cfg.SpawnTable)),
			sprite.CellWidth*enemy.Scale, sprite.CellHeight*enemy.Scale,
			enemy.MinSpeed, enemy.MaxSpeed, enemy.MaxFrame, enemy.FrameIntervalMs)
	}
}
