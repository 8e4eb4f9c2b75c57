package logger

import "log"

// Level là mức độ chi tiết của log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là cổng log chung cho các service của hệ thống nhân sự
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger ghi log qua package log chuẩn, lọc theo mức
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger tạo DefaultLogger với mức tối thiểu cho trước
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) logf(at Level, prefix, format string, v ...interface{}) {
	if l.level <= at {
		log.Printf(prefix+format, v...)
	}
}

// Info ghi log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.logf(InfoLevel, "[INFO] ", format, v...)
}

// Error ghi log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.logf(ErrorLevel, "[ERROR] ", format, v...)
}

// Debug ghi log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.logf(DebugLevel, "[DEBUG] ", format, v...)
}
