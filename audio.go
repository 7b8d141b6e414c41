package main

import (
	"math"
	"sync"
)

// stepAudio synthesizes footstep bursts for Ebiten's audio player: a white
// noise envelope that spikes on Trigger and decays exponentially. Read runs
// on the audio goroutine, Trigger on the game loop.
type stepAudio struct {
	mu    sync.Mutex
	env   float64
	noise uint32
}

func newStepAudio() *stepAudio {
	return &stepAudio{noise: 0x9d2c5680}
}

// Trigger raises the burst envelope to at least the emission loudness.
func (s *stepAudio) Trigger(loudness float64) {
	if loudness <= 0 {
		return
	}
	s.mu.Lock()
	if loudness > s.env {
		s.env = loudness
	}
	s.mu.Unlock()
}

// Read produces whole stereo 16-bit frames of enveloped noise.
func (s *stepAudio) Read(p []byte) (int, error) {
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	for i := 0; i < frameBytes; i += 4 {
		var v int16
		if s.env > stepBurstFloor {
			s.noise = s.noise*1664525 + 1013904223
			white := float64(int32(s.noise)) / float64(math.MaxInt32)
			v = int16(white * s.env * pcm16MaxValue * 0.5)
			s.env *= stepBurstDecay
		} else if s.env != 0 {
			s.env = 0
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	s.mu.Unlock()
	return frameBytes, nil
}

func (s *stepAudio) Close() error { return nil }
