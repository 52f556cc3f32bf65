package logger

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rs/zerolog"
)

// StdLogger 日志接口定义
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

var (
	// Logger 用于记录常规日志，默认丢弃所有日志
	Logger StdLogger = log.New(io.Discard, "[lextrie] ", log.LstdFlags)

	// DebugLogger 用于记录调试日志，默认转发到 Logger
	DebugLogger StdLogger = &debugLogger{}
)

// debugLogger 调试日志转发器
type debugLogger struct{}

func (d *debugLogger) Print(v ...interface{}) {
	Logger.Print(v...)
}
func (d *debugLogger) Printf(format string, v ...interface{}) {
	Logger.Printf(format, v...)
}
func (d *debugLogger) Println(v ...interface{}) {
	Logger.Println(v...)
}

// SetLogger 设置全局日志实例
func SetLogger(l StdLogger) {
	Logger = l
}

// SetDebugLogger 设置调试日志实例
func SetDebugLogger(l StdLogger) {
	DebugLogger = l
}

// Discard 丢弃全部日志
func Discard() {
	Logger = log.New(io.Discard, "", 0)
	DebugLogger = log.New(io.Discard, "", 0)
}

// zerologAdapter 将 zerolog 以固定级别适配为 StdLogger
type zerologAdapter struct {
	z     zerolog.Logger
	level zerolog.Level
}

// NewZerolog 创建输出到 w 的控制台日志，level 决定该实例写出的事件级别
func NewZerolog(w io.Writer, level zerolog.Level) StdLogger {
	z := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	return &zerologAdapter{z: z, level: level}
}

func (a *zerologAdapter) Print(v ...interface{}) {
	a.z.WithLevel(a.level).Msg(fmt.Sprint(v...))
}

func (a *zerologAdapter) Printf(format string, v ...interface{}) {
	a.z.WithLevel(a.level).Msg(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}

func (a *zerologAdapter) Println(v ...interface{}) {
	a.z.WithLevel(a.level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Setup 按命令行详细程度配置全局日志：verbose 打开常规日志，debug 同时打开调试日志
func Setup(w io.Writer, verbose, debug bool) {
	switch {
	case debug:
		SetLogger(NewZerolog(w, zerolog.InfoLevel))
		SetDebugLogger(NewZerolog(w, zerolog.DebugLevel))
	case verbose:
		SetLogger(NewZerolog(w, zerolog.InfoLevel))
		SetDebugLogger(log.New(io.Discard, "", 0))
	default:
		Discard()
	}
}
