package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoService wraps the DynamoDB client with the access patterns the
// domain services need.
type DynamoService struct {
	Client DynamoAPI
}

// DynamoAPI is the subset of the DynamoDB client used by this service
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// ErrItemNotFound is returned when a keyed read finds no item
var ErrItemNotFound = errors.New("item not found")

// ErrConditionFailed is returned when a conditional write or transaction is
// rejected because a condition expression did not hold.
var ErrConditionFailed = errors.New("condition failed")

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(region string) *dynamodb.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// PutItem marshals and stores an item
func (ds *DynamoService) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &tableName,
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	return nil
}

// GetItem retrieves an item by key and unmarshals it into out
func (ds *DynamoService) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue, out interface{}) error {
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}
	if output.Item == nil {
		return ErrItemNotFound
	}
	if err := attributevalue.UnmarshalMap(output.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal item from table '%s': %w", tableName, err)
	}
	return nil
}

// GetByID retrieves an item keyed by its string id
func (ds *DynamoService) GetByID(ctx context.Context, tableName, id string, out interface{}) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	return ds.GetItem(ctx, tableName, key, out)
}

// DeleteItem removes an item, optionally guarded by a condition expression.
// A rejected condition maps to ErrConditionFailed.
func (ds *DynamoService) DeleteItem(
	ctx context.Context,
	tableName string,
	key map[string]types.AttributeValue,
	conditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
) error {
	input := &dynamodb.DeleteItemInput{
		TableName: &tableName,
		Key:       key,
	}
	if conditionExpression != "" {
		input.ConditionExpression = &conditionExpression
		input.ExpressionAttributeValues = expressionAttributeValues
	}

	_, err := ds.Client.DeleteItem(ctx, input)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrConditionFailed
		}
		return fmt.Errorf("failed to delete item from table '%s': %w", tableName, err)
	}
	return nil
}

// QueryItemsWithIndex queries items through a Global Secondary Index and
// unmarshals the results into out
func (ds *DynamoService) QueryItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	out interface{},
) error {
	output, err := ds.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 &tableName,
		IndexName:                 &indexName,
		KeyConditionExpression:    &keyConditionExpression,
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
	})
	if err != nil {
		return fmt.Errorf("failed to query GSI '%s': %w", indexName, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(output.Items, out); err != nil {
		return fmt.Errorf("failed to unmarshal query result: %w", err)
	}
	return nil
}

// ScanWithFilter scans a table, keeps items for which filterFunc returns
// true, and unmarshals them into out
func (ds *DynamoService) ScanWithFilter(
	ctx context.Context,
	tableName string,
	filterFunc func(map[string]types.AttributeValue) bool,
	out interface{},
) error {
	output, err := ds.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		return fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}

	var filtered []map[string]types.AttributeValue
	for _, item := range output.Items {
		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	if err := attributevalue.UnmarshalListOfMaps(filtered, out); err != nil {
		return fmt.Errorf("failed to unmarshal scan result: %w", err)
	}
	return nil
}

// TransactUpdate describes one guarded update inside a transaction
type TransactUpdate struct {
	TableName                 string
	Key                       map[string]types.AttributeValue
	UpdateExpression          string
	ConditionExpression       string
	ExpressionAttributeValues map[string]types.AttributeValue
	ExpressionAttributeNames  map[string]string
}

// TransactUpdateItems applies all updates atomically. If any condition
// expression fails the whole transaction is cancelled and no item changes;
// that case maps to ErrConditionFailed.
func (ds *DynamoService) TransactUpdateItems(ctx context.Context, updates []TransactUpdate) error {
	items := make([]types.TransactWriteItem, 0, len(updates))
	for _, u := range updates {
		update := &types.Update{
			TableName:                 aws.String(u.TableName),
			Key:                       u.Key,
			UpdateExpression:          aws.String(u.UpdateExpression),
			ExpressionAttributeValues: u.ExpressionAttributeValues,
		}
		if u.ConditionExpression != "" {
			update.ConditionExpression = aws.String(u.ConditionExpression)
		}
		if len(u.ExpressionAttributeNames) > 0 {
			update.ExpressionAttributeNames = u.ExpressionAttributeNames
		}
		items = append(items, types.TransactWriteItem{Update: update})
	}

	_, err := ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return ErrConditionFailed
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
