package services

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/dmitrijs2005/blogcrm/internal/logging"
	"github.com/dmitrijs2005/blogcrm/internal/models"
)

const leadNotificationSubject = "New blog lead"

// SNSPublisher is the subset of the SNS client used by the notifier.
type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// LeadNotifier publishes lead-created events to an SNS topic as a
// best-effort side effect: any failure is logged and discarded, and must
// never fail the originating request. With no topic configured the notifier
// is a no-op.
type LeadNotifier struct {
	client   SNSPublisher
	topicARN string
	logger   logging.Logger
}

func NewLeadNotifier(client SNSPublisher, topicARN string, logger logging.Logger) *LeadNotifier {
	return &LeadNotifier{client: client, topicARN: topicARN, logger: logger}
}

type leadNotification struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	LeadID    string `json:"leadId"`
	CreatedAt string `json:"createdAt"`
}

// LeadCreated publishes a notification for the lead. It returns nothing:
// the contract is fire-and-forget.
func (n *LeadNotifier) LeadCreated(ctx context.Context, lead *models.Lead) {
	if n.topicARN == "" {
		return
	}

	payload, err := json.MarshalIndent(leadNotification{
		Name:      lead.Name,
		Email:     lead.Email,
		Message:   lead.Message,
		Source:    lead.SourceOrUnknown(),
		LeadID:    lead.ID,
		CreatedAt: lead.CreatedAt,
	}, "", "  ")
	if err != nil {
		n.logger.Error(ctx, "failed to marshal lead notification", "error", err.Error(), "lead_id", lead.ID)
		return
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(leadNotificationSubject),
		Message:  aws.String(string(payload)),
	})
	if err != nil {
		n.logger.Error(ctx, "failed to publish lead notification", "error", err.Error(), "lead_id", lead.ID)
	}
}
