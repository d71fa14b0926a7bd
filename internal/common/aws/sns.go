// internal/common/aws/sns.go
package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const EventIdeaCommitted = "idea.committed"

// SNSAPI is the part of the SNS client the publisher uses.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func NewSNSClient(ctx context.Context, region string) (*sns.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return sns.NewFromConfig(cfg), nil
}

// DecisionEvent announces that a founder committed to an idea.
type DecisionEvent struct {
	EventType   string    `json:"eventType"`
	DecisionID  string    `json:"decisionId"`
	UserID      string    `json:"userId"`
	IdeaID      string    `json:"ideaId"`
	IdeaTitle   string    `json:"ideaTitle"`
	CommittedAt time.Time `json:"committedAt"`
}

// EventPublisher publishes decision events to a single topic.
type EventPublisher struct {
	client   SNSAPI
	topicARN string
}

func NewEventPublisher(client SNSAPI, topicARN string) *EventPublisher {
	return &EventPublisher{client: client, topicARN: topicARN}
}

// PublishDecision sends evt and returns the SNS message id.
func (p *EventPublisher) PublishDecision(ctx context.Context, evt DecisionEvent) (string, error) {
	if evt.EventType == "" {
		evt.EventType = EventIdeaCommitted
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return "", fmt.Errorf("marshal decision event: %w", err)
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: awssdk.String(p.topicARN),
		Message:  awssdk.String(string(body)),
		Subject:  awssdk.String("Founder committed to an idea"),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventType": {DataType: awssdk.String("String"), StringValue: awssdk.String(evt.EventType)},
			"ideaId":    {DataType: awssdk.String("String"), StringValue: awssdk.String(evt.IdeaID)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish to %s: %w", p.topicARN, err)
	}
	return awssdk.ToString(out.MessageId), nil
}
