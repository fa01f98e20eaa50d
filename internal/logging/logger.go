package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger prints leveled messages to the terminal and keeps a small ring
// buffer of the most recent lines so a crash report can include them.
type Logger struct {
	mu       sync.Mutex
	logs     []string
	logIndex int
	maxLogs  int
	crashDir string
}

var instance *Logger
var once sync.Once

// InitLogger initializes the static logger (records the last 20 logs).
func InitLogger() {
	once.Do(func() {
		instance = &Logger{
			logs:     make([]string, 20),
			maxLogs:  20,
			crashDir: "logs/crash",
		}
	})
}

// GetLogger returns the singleton instance, initializing it on first use.
func GetLogger() *Logger {
	InitLogger()
	return instance
}

func (l *Logger) log(level, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)
	fmt.Println(line)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs[l.logIndex] = line
	l.logIndex = (l.logIndex + 1) % l.maxLogs
}

func (l *Logger) Info(format string, args ...any) {
	l.log("INFO", fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.log("DEBUG", fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.log("WARN", fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.log("ERROR", fmt.Sprintf(format, args...))
}

// RecoverAndLogPanic is meant to be deferred at the top of a goroutine so a
// panic leaves a crash file behind instead of taking the process down silently.
func (l *Logger) RecoverAndLogPanic() {
	if r := recover(); r != nil {
		l.WriteCrashFile(r)
	}
}

// WriteCrashFile dumps the panic value and the recent log lines to a file.
func (l *Logger) WriteCrashFile(r any) {
	recentLogs := l.RecentLogs()

	if err := os.MkdirAll(l.crashDir, os.ModePerm); err != nil {
		fmt.Printf("Failed to create log directory: %v\n", err)
		return
	}

	timestamp := time.Now().Format("20060102-150405")
	crashFile := filepath.Join(l.crashDir, fmt.Sprintf("crash-%s.log", timestamp))
	file, err := os.Create(crashFile)
	if err != nil {
		fmt.Printf("Failed to create crash file: %v\n", err)
		return
	}
	defer file.Close()

	file.WriteString("==== Crash Report ====\n")
	file.WriteString(fmt.Sprintf("Time: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	file.WriteString(fmt.Sprintf("Panic: %v\n\n", r))
	file.WriteString("==== Recent Logs ====\n")
	for _, line := range recentLogs {
		file.WriteString(line + "\n")
	}
}

// RecentLogs returns the buffered lines, oldest first.
func (l *Logger) RecentLogs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var recentLogs []string
	for i := 0; i < l.maxLogs; i++ {
		index := (l.logIndex + i) % l.maxLogs
		if l.logs[index] != "" {
			recentLogs = append(recentLogs, l.logs[index])
		}
	}
	return recentLogs
}
