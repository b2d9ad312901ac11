package main

import (
	"time"

	"github.com/gonewx/spawner/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const blipSampleRate = beep.SampleRate(44100)

// spawnBlip 在生成敌人时播放的短促正弦音
type spawnBlip struct {
	frequency float64
	duration  int // 采样数
	gain      float64
}

// newSpawnBlip 初始化扬声器并创建提示音
func newSpawnBlip(sound config.SoundConfig) (*spawnBlip, error) {
	if err := speaker.Init(blipSampleRate, blipSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}

	return &spawnBlip{
		frequency: sound.ToneHz,
		duration:  blipSampleRate.N(time.Duration(sound.ToneMs * float64(time.Millisecond))),
		gain:      sound.Volume - 1,
	}, nil
}

// Play 播放一次提示音，不阻塞
func (b *spawnBlip) Play() {
	sine, err := generators.SineTone(blipSampleRate, b.frequency)
	if err != nil {
		return
	}
	speaker.Play(&effects.Gain{Streamer: beep.Take(b.duration, sine), Gain: b.gain})
}

// Close 关闭扬声器
func (b *spawnBlip) Close() {
	speaker.Close()
}
