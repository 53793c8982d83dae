package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRegistryEnabledFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "publishers.yaml")
	raw := `
publishers:
  - id: http1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: http2
    type: http
    enabled: true
    http:
      url: https://example.com/2
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "http2" {
		t.Fatalf("expected only http2 enabled, got %#v", enabled)
	}
}

func TestValidatePublisherConfigRejectsMissingHTTP(t *testing.T) {
	err := validatePublisherConfig(PublisherConfig{
		ID:   "h1",
		Type: TypeHTTP,
	})
	if err == nil {
		t.Fatalf("expected validation error for missing http block")
	}
}

func TestLoadRegistryParsesQueueSinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "publishers.yml")
	raw := `
publishers:
  - id: audit-queue
    type: SQS
    sqs:
      uri: " http://localhost:4566/000000000000/console "
      region: us-east-1
      endpoint: http://localhost:4566
      access_key_id: test
      secret_access_key: test
  - id: audit-topic
    type: sns
    sns:
      topic_arn: arn:aws:sns:us-east-1:000000000000:console
      region: us-east-1
  - id: audit-pubsub
    type: gcp_pubsub
    gcp_pubsub:
      project_id: demo
      topic: console-events
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	sqsCfg, ok := reg.ByID("audit-queue")
	if !ok || sqsCfg.Type != TypeSQS {
		t.Fatalf("expected normalized sqs entry, got %#v", sqsCfg)
	}
	if sqsCfg.SQS.QueueURL != "http://localhost:4566/000000000000/console" {
		t.Fatalf("queue url not trimmed: %q", sqsCfg.SQS.QueueURL)
	}
	if sqsCfg.SQS.Endpoint != "http://localhost:4566" || sqsCfg.SQS.AccessKeyID != "test" {
		t.Fatalf("inline aws access not decoded: %#v", sqsCfg.SQS.AWSAccess)
	}
	if len(reg.Enabled()) != 3 {
		t.Fatalf("expected all sinks enabled by default")
	}
}

func TestValidatePublisherConfigRejectsIncompleteSinks(t *testing.T) {
	cases := []PublisherConfig{
		{ID: "s1", Type: TypeSNS, SNS: &SNSPublisherConfig{Region: "us-east-1"}},
		{ID: "g1", Type: TypeGCPPubSub, GCPPubSub: &GCPQueueConfig{ProjectID: "p"}},
		{ID: "q1", Type: TypeSQS, SQS: &SQSPublisherConfig{QueueURL: "u"}},
		{ID: "x1", Type: "carrier-pigeon"},
	}
	for _, cfg := range cases {
		if err := validatePublisherConfig(cfg); err == nil {
			t.Fatalf("expected validation error for %s", cfg.ID)
		}
	}
}
