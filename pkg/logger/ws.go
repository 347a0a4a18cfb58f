package logger

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	RotationExternal = "external"
	RotationInternal = "internal"
)

// ReopenableWriteSyncer reopens its file on Reload, so an external logrotate can move the file away.
type ReopenableWriteSyncer struct {
	file string
	cur  atomic.Pointer[os.File]
}

func NewReopenableWriteSyncer(file string) (*ReopenableWriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, err
	}
	ws := &ReopenableWriteSyncer{
		file: file,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if old := ws.cur.Swap(file); old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.cur.Load().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.cur.Load().Close()
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (n int, err error) {
	return ws.cur.Load().Write(p)
}

type RotationConfig struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewRotatingWriteSyncer rotates the file in process, for hosts without logrotate.
func NewRotatingWriteSyncer(file string, cfg RotationConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	})
}

// NewFileSyncer picks the syncer for the rotation mode. reload is nil unless the mode is external.
func NewFileSyncer(file string, rotation string, cfg RotationConfig) (ws zapcore.WriteSyncer, reload func() error, err error) {
	if rotation == RotationInternal {
		return NewRotatingWriteSyncer(file, cfg), nil, nil
	}
	reopenable, err := NewReopenableWriteSyncer(file)
	if err != nil {
		return nil, nil, err
	}
	return reopenable, reopenable.Reload, nil
}
