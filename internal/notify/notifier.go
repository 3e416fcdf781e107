package notify

import "log/slog"

// Notifier is the toast surface of the client. Services report
// user-facing outcomes here and still return the error to the caller.
type Notifier interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
}

type logNotifier struct {
	logger *slog.Logger
}

func NewNotifier() Notifier {
	return &logNotifier{logger: slog.Default()}
}

func (n *logNotifier) Info(msg string) {
	n.logger.Info(msg)
}

func (n *logNotifier) Success(msg string) {
	n.logger.Info(msg, "status", "success")
}

func (n *logNotifier) Error(msg string) {
	n.logger.Error(msg)
}

// Nop drops every notification. Used for fetches that must fail
// silently, like the optional insights calls.
type Nop struct{}

func (Nop) Info(msg string)    {}
func (Nop) Success(msg string) {}
func (Nop) Error(msg string)   {}
