package storage

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/yeshu2004/real-time-pooling/logging"
)

type AnswerStorage interface {
	// Create stores an answer, failing with ErrAnswerExists if the
	// (poll, respondent) pair already answered.
	Create(ctx context.Context, answer *Answer) error
	ListByPoll(ctx context.Context, pollID string) ([]*Answer, error)
}

type DynamoAnswerStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoAnswerStorage) Create(ctx context.Context, answer *Answer) error {
	if answer.Timestamp.IsZero() {
		answer.Timestamp = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(answer)
	if err != nil {
		logging.Log.Errorf("ANSWER: failed to marshal answer: %v", err)
		return err
	}

	// The conditional put is the durable dedup constraint: at most one
	// answer per (poll, respondent) even under concurrent submissions.
	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrAnswerExists
		}
		logging.Log.Errorf("ANSWER: failed to create answer: %v", err)
		return err
	}
	return nil
}

func (s *DynamoAnswerStorage) ListByPoll(ctx context.Context, pollID string) ([]*Answer, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :pollId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pollId": &types.AttributeValueMemberS{Value: pollID},
		},
	}

	output, err := s.Client.Query(ctx, input)
	if err != nil {
		logging.Log.Errorf("ANSWER: failed to query answers for poll %s: %v", pollID, err)
		return nil, err
	}

	var answers []*Answer
	if err := attributevalue.UnmarshalListOfMaps(output.Items, &answers); err != nil {
		logging.Log.Errorf("ANSWER: failed to unmarshal answers for poll %s: %v", pollID, err)
		return nil, err
	}
	return answers, nil
}
