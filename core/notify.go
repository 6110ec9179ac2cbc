package core

// Notifier is the notification sink consumed by minigames and progression
// Implementations must not block the caller
type Notifier interface {
	Notify(title, description string)
}

// NopNotifier discards all notifications
type NopNotifier struct{}

func (NopNotifier) Notify(title, description string) {}
