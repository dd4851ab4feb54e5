package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("layout complete", "items", 3)

	out := buf.String()
	for _, want := range []string{"layout complete", "items=3", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress.done() output = %q, missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return the default logger when none is set")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
}

func TestRunLayoutLogsProgress(t *testing.T) {
	var buf bytes.Buffer
	c := testCLI(t)
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	if err := c.runLayout(ctx, writeScene(t), "", true, &layoutFlags{}, noneChanged); err != nil {
		t.Fatalf("runLayout() error = %v", err)
	}
	if !strings.Contains(buf.String(), "scene=panel items=3 passes=2") {
		t.Errorf("progress not logged through the context logger:\n%s", buf.String())
	}
}

func TestConfigLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ADJUSTABLE_LOGGING_LEVEL", "debug")

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug from ADJUSTABLE_LOGGING_LEVEL", c.Logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "configuration loaded") {
		t.Errorf("debug log missing after level change:\n%s", buf.String())
	}
}
