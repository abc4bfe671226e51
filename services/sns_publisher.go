package services

import (
	"context"
	"encoding/json"
	"fmt"

	"parcel-service/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// EventPublisher publishes payment lifecycle events for downstream
// consumers (notifications, analytics). Publication is best-effort.
type EventPublisher interface {
	PublishPaymentConfirmed(ctx context.Context, event models.PaymentConfirmedEvent) error
}

// SNSPublisher implements EventPublisher on an SNS topic.
type SNSPublisher struct {
	client   *sns.Client
	topicARN string
}

func NewSNSPublisher(ctx context.Context, topicARN string) (*SNSPublisher, error) {
	if topicARN == "" {
		return nil, fmt.Errorf("SNS topic ARN not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SNSPublisher{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}, nil
}

func (p *SNSPublisher) PublishPaymentConfirmed(ctx context.Context, event models.PaymentConfirmedEvent) error {
	msgBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(msgBytes)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Type),
			},
		},
	})
	return err
}
