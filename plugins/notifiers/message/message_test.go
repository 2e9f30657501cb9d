package message_test

import (
	"testing"

	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/plugins/notifiers/message"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	vars := map[string]interface{}{
		"instance_id":   "inst-1",
		"request_type":  domain.RequestTypeExpense,
		"requester":     "alice@example.com",
		"level_name":    "manager",
		"template_name": "Expense flow",
	}

	tests := []struct {
		name      string
		overrides domain.NotificationMessages
		message   domain.NotificationMessage
		want      string
		wantErr   bool
	}{
		{
			name: "uses the embedded default template",
			message: domain.NotificationMessage{
				Type:      domain.NotificationTypeRequestApproved,
				Variables: vars,
			},
			want: "Your expense request inst-1 has been approved.",
		},
		{
			name: "uses the configured template over the default",
			overrides: domain.NotificationMessages{
				RequestApproved: "{{.instance_id}} done",
			},
			message: domain.NotificationMessage{
				Type:      domain.NotificationTypeRequestApproved,
				Variables: vars,
			},
			want: "inst-1 done",
		},
		{
			name: "renders optional variables",
			message: domain.NotificationMessage{
				Type: domain.NotificationTypeRequestRejected,
				Variables: map[string]interface{}{
					"instance_id":  "inst-2",
					"request_type": domain.RequestTypeLeave,
					"comment":      "overlaps release",
				},
			},
			want: "Your leave request inst-2 has been rejected: overlaps release.",
		},
		{
			name: "renders list variables",
			message: domain.NotificationMessage{
				Type: domain.NotificationTypePendingApprovalsReminder,
				Variables: map[string]interface{}{
					"pending_count": 1,
					"instances": []map[string]interface{}{
						{"instance_id": "inst-3", "request_type": "purchase", "requester": "bob@example.com"},
					},
				},
			},
			want: "You have 1 request(s) waiting for your approval:\n- purchase request inst-3 from bob@example.com",
		},
		{
			name:    "unknown message type",
			message: domain.NotificationMessage{Type: "unknown"},
			wantErr: true,
		},
		{
			name: "malformed override",
			overrides: domain.NotificationMessages{
				RequestCancelled: "{{.instance_id",
			},
			message: domain.NotificationMessage{Type: domain.NotificationTypeRequestCancelled},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := message.NewRenderer(tc.overrides).Render(tc.message)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
