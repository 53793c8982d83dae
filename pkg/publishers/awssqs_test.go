package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/samvad-hq/storefront-console/internal/domain"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestAWSSQSSenderSendSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	sender := &awsSQSSender{
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := sender.Send(context.Background(), NewEvent(domain.Outcome{
		ID:        "o1",
		Operation: "products.create",
		Entity:    "products",
		Kind:      domain.KindOK,
	}))
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["operation"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "products.create" {
		t.Fatalf("operation attribute missing or wrong: %#v", attr)
	}
	if attr.DataType == nil || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("DataType should be String, got %#v", attr.DataType)
	}
	if kind := client.input.MessageAttributes["outcome_kind"]; aws.ToString(kind.StringValue) != domain.KindOK {
		t.Fatalf("outcome_kind attribute = %q", aws.ToString(kind.StringValue))
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"operation":"products.create"`) {
		t.Fatalf("MessageBody missing operation: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestAWSSQSSenderSendError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("boom")}
	sender := &awsSQSSender{
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := sender.Send(context.Background(), NewEvent(domain.Outcome{
		ID:        "o1",
		Operation: "products.create",
		Entity:    "products",
		Kind:      domain.KindOK,
	}))
	if err == nil {
		t.Fatalf("expected error from Send")
	}
}
