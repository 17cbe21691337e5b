package notify

import (
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Notifier sends desktop notifications via notify-send. Failures are
// ignored at the call sites; a missing notification daemon should never
// interrupt a session.
type Notifier struct {
	enabled bool
}

// New creates a notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled {
		return nil
	}

	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "fokus")

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// SessionComplete announces the end of a focus session.
func (n *Notifier) SessionComplete(taskTitle string) {
	_ = n.Send(Notification{
		Title:   "Focus Session Complete!",
		Body:    taskTitle,
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "alarm-symbolic",
	})
}

// BreakComplete announces the end of a break.
func (n *Notifier) BreakComplete() {
	_ = n.Send(Notification{
		Title:   "Break Over",
		Body:    "Time to get back to work!",
		Urgency: UrgencyNormal,
		Timeout: 10 * time.Second,
		Icon:    "appointment-soon-symbolic",
	})
}

// DueReminder warns about a task approaching or past its due date.
func (n *Notifier) DueReminder(taskTitle string, dueIn time.Duration) {
	var body string
	urgency := UrgencyNormal
	switch {
	case dueIn <= 0:
		body = "Task is now overdue!"
		urgency = UrgencyCritical
	case dueIn < time.Hour:
		body = "Task due in less than an hour"
	default:
		body = "Task due soon"
	}

	_ = n.Send(Notification{
		Title:   taskTitle,
		Body:    body,
		Urgency: urgency,
		Timeout: 15 * time.Second,
		Icon:    "emblem-important-symbolic",
	})
}
