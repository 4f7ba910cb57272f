package game

import "time"

// Timer counts frames towards a target duration.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
	frame       time.Duration
}

func NewTimer(target time.Duration, tps int) *Timer {
	if tps <= 0 {
		tps = 60
	}
	return &Timer{
		currentTime: 0,
		targetTime:  target,
		frame:       time.Second / time.Duration(tps),
	}
}

func (t *Timer) Update() {
	t.currentTime += t.frame
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Elapsed() time.Duration {
	return t.currentTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
