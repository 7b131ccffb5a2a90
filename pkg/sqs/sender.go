package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// maxBatchSize is the SQS limit of entries per SendMessageBatch call.
const maxBatchSize = 10

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// SenderClient is the subset of the SQS API used by Sender
type SenderClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SenderClient
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SenderClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := getQueueURL(ctx, s.sqsClient, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return nil
}

// SendMessageBatch sends messages in parallel batches of 10 to the specified queue.
// Returns BatchResult with successful and failed message IDs.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	finalResult := &BatchResult{
		Successful: []string{},
		Failed:     []string{},
	}
	if len(messages) == 0 {
		return finalResult, nil
	}

	queueURL, err := getQueueURL(ctx, s.sqsClient, queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	var batches [][]BatchMessage
	for i := 0; i < len(messages); i += maxBatchSize {
		end := min(i+maxBatchSize, len(messages))
		batches = append(batches, messages[i:end])
	}

	resultChan := make(chan *BatchResult, len(batches))
	var wg sync.WaitGroup

	for _, batch := range batches {
		wg.Add(1)
		go func(batchMessages []BatchMessage) {
			defer wg.Done()

			batchResult, err := s.sendBatch(ctx, queueURL, batchMessages)
			if err != nil {
				resultChan <- &BatchResult{Successful: []string{}, Failed: extractMessageIDs(batchMessages)}
				return
			}
			resultChan <- batchResult
		}(batch)
	}

	wg.Wait()
	close(resultChan)

	for batchResult := range resultChan {
		finalResult.Successful = append(finalResult.Successful, batchResult.Successful...)
		finalResult.Failed = append(finalResult.Failed, batchResult.Failed...)
	}

	return finalResult, nil
}

// sendBatch sends a single batch of up to 10 messages
func (s *Sender) sendBatch(ctx context.Context, queueURL string, messages []BatchMessage) (*BatchResult, error) {
	if len(messages) > maxBatchSize {
		return nil, fmt.Errorf("batch size cannot exceed %d messages, got %d", maxBatchSize, len(messages))
	}

	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))
	result := &BatchResult{
		Successful: []string{},
		Failed:     []string{},
	}

	for _, msg := range messages {
		jsonBody, err := json.Marshal(msg.Body)
		if err != nil {
			result.Failed = append(result.Failed, msg.MessageID)
			continue
		}

		id := msg.MessageID
		messageBody := string(jsonBody)
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          &id,
			MessageBody: &messageBody,
		})
	}

	if len(entries) == 0 {
		return result, nil
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: &queueURL,
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message batch: %w", err)
	}

	for _, success := range output.Successful {
		if success.Id != nil {
			result.Successful = append(result.Successful, *success.Id)
		}
	}
	for _, failed := range output.Failed {
		if failed.Id != nil {
			result.Failed = append(result.Failed, *failed.Id)
		}
	}

	return result, nil
}

type queueURLResolver interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
}

// getQueueURL retrieves the URL for the specified queue name
func getQueueURL(ctx context.Context, client queueURLResolver, queueName string) (string, error) {
	result, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}
	return *result.QueueUrl, nil
}

// extractMessageIDs extracts message IDs from a slice of BatchMessage
func extractMessageIDs(messages []BatchMessage) []string {
	ids := make([]string, len(messages))
	for i, msg := range messages {
		ids[i] = msg.MessageID
	}
	return ids
}
