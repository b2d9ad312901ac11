package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/spawner/pkg/app"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/gonewx/spawner/pkg/render"
	"github.com/gonewx/spawner/pkg/scenes"
)

// terminal 驱动终端版主循环
type terminal struct {
	screen  tcell.Screen
	scene   *scenes.SpawnerScene
	surface *render.TerminalSurface
	clock   *app.FrameClock
	start   time.Time
}

func newTerminal(screen tcell.Screen, scene *scenes.SpawnerScene, cfg *config.SpawnerConfig) *terminal {
	return &terminal{
		screen:  screen,
		scene:   scene,
		surface: render.NewTerminalSurface(screen, cfg.Surface.Width, cfg.Surface.Height),
		clock:   app.NewFrameClock(cfg.Loop.MaxDeltaMs),
		start:   time.Now(),
	}
}

// frame 推进一帧：先完整更新，再完整绘制
// now 为单调时间戳(毫秒)
func (t *terminal) frame(now float64) {
	t.scene.Update(t.clock.Tick(now))
	t.scene.Draw(t.surface)
	t.screen.Show()
}

// handleEvent 处理终端事件，返回 false 表示退出
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			t.frame(float64(time.Since(t.start).Microseconds()) / 1000)
		}
	}
}
