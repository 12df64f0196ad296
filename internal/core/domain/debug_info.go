package domain

import (
	"sync"
	"time"
)

type DebugInfo struct {
	Event   string            `json:"event"`
	Timing  int64             `json:"timing_ms"`
	Options map[string]string `json:"options,omitempty"`

	startTime time.Time
}

func (d *DebugInfo) Start() {
	d.startTime = time.Now()
}

func (d *DebugInfo) Elapse() {
	d.Timing = time.Since(d.startTime).Milliseconds()
}

func (d *DebugInfo) AddOption(key string, value string) {
	if d.Options == nil {
		d.Options = make(map[string]string)
	}
	d.Options[key] = value
}

// DebugTrace собирает замеры шагов одного запроса. Нулевой указатель допустим:
// замеры тогда просто не сохраняются.
type DebugTrace struct {
	mu    sync.Mutex
	steps []DebugInfo
}

func NewDebugTrace() *DebugTrace {
	return &DebugTrace{steps: make([]DebugInfo, 0)}
}

func (t *DebugTrace) Begin(event string) *DebugInfo {
	info := &DebugInfo{Event: event}
	info.Start()
	return info
}

func (t *DebugTrace) End(info *DebugInfo) {
	info.Elapse()
	if t == nil {
		return
	}
	t.mu.Lock()
	t.steps = append(t.steps, *info)
	t.mu.Unlock()
}

func (t *DebugTrace) Steps() []DebugInfo {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]DebugInfo(nil), t.steps...)
}
