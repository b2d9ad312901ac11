package config

// 布局配置常量
// 本文件定义窗口与绘制表面的默认尺寸，以及调试信息的位置

const (
	// DefaultSurfaceWidth 是绘制表面的默认宽度（逻辑像素）
	DefaultSurfaceWidth = 500.0

	// DefaultSurfaceHeight 是绘制表面的默认高度（逻辑像素）
	DefaultSurfaceHeight = 800.0

	// DefaultTPS 是窗口版每秒更新次数
	DefaultTPS = 60

	// WindowTitle 窗口标题
	WindowTitle = "Enemy Spawner"

	// DebugOverlayX 调试信息左上角X坐标
	DebugOverlayX = 8.0

	// DebugOverlayY 调试信息左上角Y坐标
	DebugOverlayY = 8.0

	// DebugOverlayLineHeight 调试信息行高
	DebugOverlayLineHeight = 16.0
)
