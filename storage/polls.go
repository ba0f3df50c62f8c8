package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/yeshu2004/real-time-pooling/logging"
)

type PollStorage interface {
	Get(ctx context.Context, id string) (*Poll, error)
	GetActive(ctx context.Context) (*Poll, error)
	Create(ctx context.Context, poll *Poll) error
	SetActive(ctx context.Context, id string, active bool) error
}

type DynamoPollStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoPollStorage) Get(ctx context.Context, id string) (*Poll, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("POLL: failed to marshal key for %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("POLL: GetItem for %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrPollNotFound
	}

	var poll Poll
	if err := attributevalue.UnmarshalMap(out.Item, &poll); err != nil {
		logging.Log.Errorf("POLL: failed to unmarshal poll: %v", err)
		return nil, err
	}
	return &poll, nil
}

func (s *DynamoPollStorage) GetActive(ctx context.Context) (*Poll, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("Active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		logging.Log.Errorf("POLL: scan for active poll failed: %v", err)
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, ErrPollNotFound
	}

	var poll Poll
	if err := attributevalue.UnmarshalMap(out.Items[0], &poll); err != nil {
		logging.Log.Errorf("POLL: failed to unmarshal active poll: %v", err)
		return nil, err
	}
	return &poll, nil
}

func (s *DynamoPollStorage) Create(ctx context.Context, poll *Poll) error {
	item, err := attributevalue.MarshalMap(poll)
	if err != nil {
		logging.Log.Errorf("POLL: failed to marshal poll: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		logging.Log.Errorf("POLL: failed to create poll: %v", err)
		return err
	}
	return nil
}

func (s *DynamoPollStorage) SetActive(ctx context.Context, id string, active bool) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.TableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String("SET Active = :val"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":val": &types.AttributeValueMemberBOOL{Value: active}},
	}
	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		logging.Log.Errorf("POLL: failed to set active=%t for %s: %v", active, id, err)
	}
	return err
}
