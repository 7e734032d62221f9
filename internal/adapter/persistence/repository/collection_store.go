package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const defaultCollectionsTableName = "collections"

// Logical collection keys. One DynamoDB item per key holds the whole
// serialized collection, mirroring the read-all/write-all store contract.
const (
	collectionProducts = "products"
	collectionQuotes   = "quotes"
	collectionOrders   = "production_orders"
	collectionEvents   = "calendar_events"
	collectionSession  = "session"
)

type collectionItem struct {
	Name      string `dynamodbav:"name"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CollectionStore persists whole entity collections in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//
// Every mutation in the engine is read full collection, compute, write full
// collection back; a PutItem replaces the item atomically, so a failed write
// leaves the previous collection value in place.

type CollectionStore struct {
	ddb       *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

func NewCollectionStore(ddb *dynamodb.Client, logger *zap.Logger) *CollectionStore {
	return &CollectionStore{
		ddb:       ddb,
		tableName: getenvDefault("COLLECTIONS_TABLE", defaultCollectionsTableName),
		logger:    logger,
	}
}

// Load reads a collection into out (a pointer to a slice or struct). A
// missing item leaves out at its zero value. Unreadable or corrupt payloads
// are logged and treated as empty: losing a collection is preferable to
// taking the whole engine down with it.
func (s *CollectionStore) Load(ctx context.Context, name string, out any) error {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		s.logger.Warn("collection unreadable, treating as empty",
			zap.String("collection", name),
			zap.Error(err),
		)
		return nil
	}
	if len(res.Item) == 0 {
		return nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(res.Item, &it); err != nil {
		s.logger.Warn("collection item corrupt, treating as empty",
			zap.String("collection", name),
			zap.Error(err),
		)
		return nil
	}
	if err := json.Unmarshal([]byte(it.Payload), out); err != nil {
		s.logger.Warn("collection payload corrupt, treating as empty",
			zap.String("collection", name),
			zap.Error(err),
		)
		return nil
	}
	return nil
}

// Save overwrites the collection. Write failures are returned to the caller:
// a lost mutation the user believes succeeded must never be silent.
func (s *CollectionStore) Save(ctx context.Context, name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(collectionItem{
		Name:      name,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		s.logger.Error("collection write failed",
			zap.String("collection", name),
			zap.Error(err),
		)
	}
	return err
}

// Delete removes the collection item entirely (used for the session slot).
func (s *CollectionStore) Delete(ctx context.Context, name string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
	})
	return err
}

func (s *CollectionStore) exists(ctx context.Context, name string) (bool, error) {
	res, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(res.Item) > 0, nil
}
