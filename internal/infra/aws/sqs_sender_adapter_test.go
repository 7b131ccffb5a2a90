package aws

import (
	"context"
	"sync"
	"testing"

	"weather-watchlist/internal/domain/gateway/queue"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

type fakeSQS struct {
	mu      sync.Mutex
	entries []types.SendMessageBatchRequestEntry
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, in *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/" + *in.QueueName)}, nil
}

func (f *fakeSQS) SendMessage(context.Context, *sqs.SendMessageInput, ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	return &sqs.SendMessageOutput{}, nil
}

func (f *fakeSQS) SendMessageBatch(_ context.Context, in *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, in.Entries...)
	out := &sqs.SendMessageBatchOutput{}
	for _, entry := range in.Entries {
		if *entry.Id == "sync-2" {
			out.Failed = append(out.Failed, types.BatchResultErrorEntry{Id: entry.Id})
			continue
		}
		out.Successful = append(out.Successful, types.SendMessageBatchResultEntry{Id: entry.Id})
	}
	return out, nil
}

func TestSenderAdapterConvertsBatch(t *testing.T) {
	client := &fakeSQS{}
	sender := NewSQSSenderAdapter(client)

	result, err := sender.SendMessageBatch(context.Background(), "weather-sync", []queue.BatchMessage{
		{MessageID: "sync-1", Body: map[string]int64{"location_id": 1}},
		{MessageID: "sync-2", Body: map[string]int64{"location_id": 2}},
	})
	if err != nil {
		t.Fatalf("send batch: %v", err)
	}
	if len(result.Successful) != 1 || result.Successful[0] != "sync-1" || len(result.Failed) != 1 || result.Failed[0] != "sync-2" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(client.entries) != 2 || *client.entries[0].MessageBody != `{"location_id":1}` {
		t.Fatalf("unexpected entries %+v", client.entries)
	}
}
