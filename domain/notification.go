package domain

const (
	NotificationTypeApprovalAssigned         = "approval_assigned"
	NotificationTypeApprovalEscalated        = "approval_escalated"
	NotificationTypeRequestApproved          = "request_approved"
	NotificationTypeRequestRejected          = "request_rejected"
	NotificationTypeRequestAutoApproved      = "request_auto_approved"
	NotificationTypeRequestCancelled         = "request_cancelled"
	NotificationTypePendingApprovalsReminder = "pending_approvals_reminder"

	NotificationChannelEmail   = "email"
	NotificationChannelLark    = "lark"
	NotificationChannelWebhook = "webhook"
	NotificationChannelLog     = "log"
)

// NotificationChannels lists every channel a notifier provider exists for
var NotificationChannels = []string{
	NotificationChannelEmail,
	NotificationChannelLark,
	NotificationChannelWebhook,
	NotificationChannelLog,
}

func IsNotificationChannel(c string) bool {
	for _, known := range NotificationChannels {
		if c == known {
			return true
		}
	}
	return false
}

// NotificationMessages overrides the default message template of each notification type
type NotificationMessages struct {
	ApprovalAssigned         string `mapstructure:"approval_assigned"`
	ApprovalEscalated        string `mapstructure:"approval_escalated"`
	RequestApproved          string `mapstructure:"request_approved"`
	RequestRejected          string `mapstructure:"request_rejected"`
	RequestAutoApproved      string `mapstructure:"request_auto_approved"`
	RequestCancelled         string `mapstructure:"request_cancelled"`
	PendingApprovalsReminder string `mapstructure:"pending_approvals_reminder"`
}

func (m NotificationMessages) ByType() map[string]string {
	return map[string]string{
		NotificationTypeApprovalAssigned:         m.ApprovalAssigned,
		NotificationTypeApprovalEscalated:        m.ApprovalEscalated,
		NotificationTypeRequestApproved:          m.RequestApproved,
		NotificationTypeRequestRejected:          m.RequestRejected,
		NotificationTypeRequestAutoApproved:      m.RequestAutoApproved,
		NotificationTypeRequestCancelled:         m.RequestCancelled,
		NotificationTypePendingApprovalsReminder: m.PendingApprovalsReminder,
	}
}

type NotificationMessage struct {
	Type      string                 `json:"type"`
	Variables map[string]interface{} `json:"variables"`
}

// Notification is addressed to a single user. Empty Channels means the notifier's default channels.
type Notification struct {
	User     string              `json:"user"`
	Channels []string            `json:"channels,omitempty"`
	Labels   map[string]string   `json:"labels,omitempty"`
	Message  NotificationMessage `json:"message"`
}
