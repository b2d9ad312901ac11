package utils

import (
	"math/rand"
	"time"
)

// RandomSource 是所有随机抽取的统一入口
//
// 生成类型选择以及每个敌人的速度、曲线、下降上限都通过它抽取，
// 测试中可以注入确定性的实现。*rand.Rand 直接满足该接口。
type RandomSource interface {
	// Float64 返回 [0.0, 1.0) 范围内的随机数
	Float64() float64
}

// NewRandomSource 创建一个带种子的随机源
// 如果种子为 0，则使用当前时间
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandRange 返回 [min, max) 范围内均匀分布的随机数
func RandRange(r RandomSource, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// RandIndex 返回 [0, n) 范围内均匀分布的索引，n 必须大于 0
func RandIndex(r RandomSource, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// SequenceSource 按顺序循环返回预设值的随机源
// 用于需要可重现随机数的测试
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource 创建一个循环返回 values 的随机源
// values 为空时始终返回 0
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 返回序列中的下一个值
func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
