package httpcore

import (
	"fmt"
	"log"
	"time"

	"github.com/corvid-labs/httpcore/request"
)

// Log is the ambient logging sink ConnectionEngine reports to. Logging
// sinks are deliberately out of scope for the engine itself; Log is the
// injection point an embedder supplies its own implementation through.
type Log interface {
	// Status logs a handled request: its id, method, path, and remote
	// address, plus the status code the response was closed with.
	Status(req *request.Request, statusCode int)
	// Fatalf logs a fatal engine error and exits.
	Fatalf(format string, args ...any)
}

const logTimeFormat = "2006-01-02 15:04:05"

type logger struct{}

// NewLogger returns the default Log implementation: stdout lines with
// ANSI colour, matching http/log.go and message/server/log.go.
func NewLogger() *logger {
	return &logger{}
}

func (l *logger) Status(req *request.Request, statusCode int) {
	const green = "\033[32m"
	const reset = "\033[0m"
	now := time.Now().Format(logTimeFormat)
	s := fmt.Sprintf("%s [%s] %d %s %s (remote: %s)\n", now, req.ID, statusCode, req.Method, req.Path, req.RemoteAddr)
	fmt.Print(green + s + reset)
}

func (l *logger) Fatalf(format string, args ...any) {
	const red = "\033[31m"
	const reset = "\033[0m"
	now := time.Now().Format(logTimeFormat)
	msg := fmt.Sprintf(format, args...)
	fmt.Printf(red+"%s Error: %s\n"+reset, now, msg)
	log.Fatal(msg)
}
