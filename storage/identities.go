package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/yeshu2004/real-time-pooling/logging"
)

type IdentityStorage interface {
	Get(ctx context.Context, id string) (*Identity, error)
	FindByNameAndRole(ctx context.Context, name, role string) (*Identity, error)
	Create(ctx context.Context, identity *Identity) error
}

type DynamoIdentityStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoIdentityStorage) Get(ctx context.Context, id string) (*Identity, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("IDENTITY: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("IDENTITY: GetItem for %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrIdentityNotFound
	}

	var identity Identity
	if err := attributevalue.UnmarshalMap(out.Item, &identity); err != nil {
		logging.Log.Errorf("IDENTITY: failed to unmarshal result: %v", err)
		return nil, err
	}
	return &identity, nil
}

func (s *DynamoIdentityStorage) FindByNameAndRole(ctx context.Context, name, role string) (*Identity, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("#n = :name AND #r = :role"),
		ExpressionAttributeNames: map[string]string{
			"#n": "Name",
			"#r": "Role",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
			":role": &types.AttributeValueMemberS{Value: role},
		},
	})
	if err != nil {
		logging.Log.Errorf("IDENTITY: scan by name/role failed: %v", err)
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, ErrIdentityNotFound
	}

	var identity Identity
	if err := attributevalue.UnmarshalMap(out.Items[0], &identity); err != nil {
		logging.Log.Errorf("IDENTITY: failed to unmarshal result: %v", err)
		return nil, err
	}
	return &identity, nil
}

func (s *DynamoIdentityStorage) Create(ctx context.Context, identity *Identity) error {
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(identity)
	if err != nil {
		logging.Log.Errorf("IDENTITY: failed to marshal identity: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		logging.Log.Errorf("IDENTITY: PUT storage failed: %v", err)
		return err
	}
	return nil
}
