//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要把 data/spawner.yaml
// 复制到 mobile/data/ 下：
//
//	mkdir -p mobile/data && cp data/spawner.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.spawner -o build/android/spawner.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Spawner.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/spawner/pkg/app"
	"github.com/gonewx/spawner/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
