package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gonewx/spawner/pkg/components"
	"github.com/gonewx/spawner/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResourceManager is responsible for centralized management of spawner resources.
// It provides loading and caching mechanisms for sprite sheet images and sound effects,
// ensuring that resources are loaded only once and reused.
//
// The ResourceManager implements the following key features:
// - Image loading and caching (PNG/JPEG format support)
// - Sprite sheet assembly from config, with generated placeholders for missing files
// - Sound effect loading (MP3/OGG) and generated tones
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// All resources are loaded in the main goroutine before the game loop starts.
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache   map[string]*audio.Player // Cache for sound effects: path or tone name -> Player
	audioContext *audio.Context           // Global audio context, nil when sound is disabled
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing sound effects.
//     May be nil; audio methods then return an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Returns an error if the file does not exist, cannot be opened, or cannot be decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil if not loaded.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSpriteSheets loads every sprite sheet declared in the config.
//
// When an image file is missing or cannot be decoded and cfg.Debug.PlaceholderSprites
// is enabled, a generated placeholder sheet with the configured cell size and frame
// count is used instead and a warning is logged.
//
// Returns:
//   - A map from sprite name to sheet.
//   - An error if an image cannot be loaded and placeholders are disabled.
func (rm *ResourceManager) LoadSpriteSheets(cfg *config.SpawnerConfig) (map[string]*components.SpriteSheet, error) {
	names := make([]string, 0, len(cfg.Sprites))
	for name := range cfg.Sprites {
		names = append(names, name)
	}
	sort.Strings(names)

	sheets := make(map[string]*components.SpriteSheet, len(names))
	for _, name := range names {
		spriteCfg := cfg.Sprites[name]

		img, err := rm.LoadImage(spriteCfg.Path)
		if err != nil {
			if !cfg.Debug.PlaceholderSprites {
				return nil, fmt.Errorf("failed to load sprite %s: %w", name, err)
			}
			log.Printf("[ResourceManager] WARNING: %v, using placeholder for sprite %s", err, name)
			img = rm.placeholderImage(name, spriteCfg)
		}

		sheets[name] = &components.SpriteSheet{
			Name:       name,
			Image:      img,
			CellWidth:  spriteCfg.CellWidth,
			CellHeight: spriteCfg.CellHeight,
		}
		log.Printf("[ResourceManager] Loaded sprite %s (%dx%d, cell %.0fx%.0f)",
			name, img.Bounds().Dx(), img.Bounds().Dy(), spriteCfg.CellWidth, spriteCfg.CellHeight)
	}

	return sheets, nil
}

// placeholderColors 占位图的主色，按资源名区分
var placeholderColors = map[string]color.RGBA{
	"worm":   {R: 0x5a, G: 0xa0, B: 0x3c, A: 0xff},
	"ghost":  {R: 0xb4, G: 0xb4, B: 0xc8, A: 0xff},
	"spider": {R: 0x80, G: 0x20, B: 0x20, A: 0xff},
}

// placeholderImage 生成一张横向排列 frames 个单元格的占位 spritesheet
// 每帧画一个椭圆身体，加一个随帧号移动的标记点，使动画可见
func (rm *ResourceManager) placeholderImage(name string, spriteCfg config.SpriteConfig) *ebiten.Image {
	cacheKey := "placeholder:" + name
	if img, ok := rm.imageCache[cacheKey]; ok {
		return img
	}

	frames := max(spriteCfg.Frames, 1)
	cw := float32(spriteCfg.CellWidth)
	ch := float32(spriteCfg.CellHeight)

	img := ebiten.NewImage(int(math.Ceil(spriteCfg.CellWidth))*frames, int(math.Ceil(spriteCfg.CellHeight)))

	body, ok := placeholderColors[name]
	if !ok {
		body = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}

	for i := 0; i < frames; i++ {
		x := float32(i) * cw
		radius := min(cw, ch) / 2 * 0.8

		vector.DrawFilledCircle(img, x+cw/2, ch/2, radius, body, true)
		vector.StrokeRect(img, x+1, 1, cw-2, ch-2, 2, color.Black, false)

		// 标记点沿身体上沿从左到右移动
		step := float32(i) / float32(frames)
		vector.DrawFilledCircle(img, x+cw*0.2+cw*0.6*step, ch/2-radius/2, radius/5, color.Black, true)
	}

	rm.imageCache[cacheKey] = img
	return img
}

// LoadSoundEffect loads a one-shot sound effect from the specified path and caches it.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not initialized")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	defer file.Close()

	// Read the entire file into memory so the stream can seek without the file open
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// NewToneEffect generates a short sine tone and caches it under name.
//
// Parameters:
//   - name: cache key
//   - frequency: tone frequency in Hz
//   - durationMs: tone length in milliseconds
//   - volume: peak amplitude in [0, 1]
func (rm *ResourceManager) NewToneEffect(name string, frequency, durationMs, volume float64) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[name]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not initialized")
	}
	if frequency <= 0 || durationMs <= 0 {
		return nil, fmt.Errorf("invalid tone %s: frequency %.1f, duration %.1f", name, frequency, durationMs)
	}

	pcm := sineTonePCM(rm.audioContext.SampleRate(), frequency, durationMs, volume)
	player := rm.audioContext.NewPlayerFromBytes(pcm)

	rm.audioCache[name] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded sound effect, or nil if not loaded.
func (rm *ResourceManager) GetAudioPlayer(key string) *audio.Player {
	return rm.audioCache[key]
}

// PlaySoundEffect rewinds and plays a cached sound effect. Unknown keys are ignored.
func (rm *ResourceManager) PlaySoundEffect(key string) {
	player := rm.audioCache[key]
	if player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[ResourceManager] WARNING: Failed to rewind sound %s: %v", key, err)
		return
	}
	player.Play()
}

// sineTonePCM 生成 16 位小端立体声 PCM，首尾各 10% 线性淡入淡出以避免爆音
func sineTonePCM(sampleRate int, frequency, durationMs, volume float64) []byte {
	samples := int(float64(sampleRate) * durationMs / 1000)
	fade := max(samples/10, 1)
	volume = math.Max(0, math.Min(1, volume))

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := 1.0
		if i < fade {
			envelope = float64(i) / float64(fade)
		} else if remaining := samples - i; remaining < fade {
			envelope = float64(remaining) / float64(fade)
		}

		v := math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)) * envelope * volume
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
