package notify

import "agrimarket/utils"

// Severity mirrors the toast variants the portals show.
type Severity string

const (
	SeverityInfo        Severity = "info"
	SeverityDestructive Severity = "destructive"
)

// Notification is the transient message surfaced to the user after an
// action: a title, a body, and a severity.
type Notification struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Notifier is the transient toast/alert surface. The services depend only
// on this interface, not on how the message is rendered.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier renders notifications into the structured log, which is the
// only display surface a backend demo has.
type LogNotifier struct{}

// NewLogNotifier creates the default log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify writes the notification at a level matching its severity.
func (l *LogNotifier) Notify(n Notification) {
	fields := map[string]any{
		"title":    n.Title,
		"severity": string(n.Severity),
	}
	if n.Severity == SeverityDestructive {
		utils.Warn(n.Message, fields)
		return
	}
	utils.Info(n.Message, fields)
}
