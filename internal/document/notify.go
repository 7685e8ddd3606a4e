package document

import (
	"github.com/hashicorp/go-hclog"
)

// Notifier receives user-facing progress and skip messages from the updater.
type Notifier interface {
	Notify(level hclog.Level, msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(level hclog.Level, msg string)

// Notify calls f(level, msg).
func (f NotifierFunc) Notify(level hclog.Level, msg string) {
	f(level, msg)
}

// LogNotifier writes notifications to an hclog logger.
type LogNotifier struct {
	Logger hclog.Logger
}

// Notify logs msg at level.
func (n LogNotifier) Notify(level hclog.Level, msg string) {
	n.Logger.Log(level, msg)
}
