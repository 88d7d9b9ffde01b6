package service

import "log"

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// NotifierInterface defines the contract for user-facing notifications.
// Notifications are short messages (cart mutations, catalog load failure,
// fulfillment outcome); they never affect control flow.
type NotifierInterface interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Ensure LogNotifier implements NotifierInterface
var _ NotifierInterface = (*LogNotifier)(nil)

// Notify logs the notification with a severity marker.
func (n *LogNotifier) Notify(severity Severity, message string) {
	switch severity {
	case SeveritySuccess:
		log.Printf("✅ %s", message)
	case SeverityWarning:
		log.Printf("⚠️  %s", message)
	case SeverityError:
		log.Printf("❌ %s", message)
	default:
		log.Printf("%s", message)
	}
}
