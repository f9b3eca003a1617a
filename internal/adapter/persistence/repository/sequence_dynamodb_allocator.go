package repository

import (
	"context"
	"fmt"
	"strconv"

	"stonecraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// SequenceDynamoAllocator allocates integer ids from atomic counter items.
//
// Table requirements:
//   - PK: name (string), one item per sequence
//   - attr: current (number)
//
// ADD creates the item on first use, so no seeding is required; the first
// allocated id of every sequence is 1.
type SequenceDynamoAllocator struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceAllocator = (*SequenceDynamoAllocator)(nil)

func NewSequenceDynamoAllocator(ddb *dynamodb.Client) *SequenceDynamoAllocator {
	return &SequenceDynamoAllocator{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (a *SequenceDynamoAllocator) Next(ctx context.Context, sequence string) (int64, error) {
	out, err := a.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(a.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: sequence},
		},
		UpdateExpression: aws.String("ADD #current :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#current": "current",
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["current"]
	if !ok {
		return 0, fmt.Errorf("sequence %q: counter attribute missing from update response", sequence)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("sequence %q: counter attribute is not a number", sequence)
	}

	id, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("sequence %q: parsing counter value %q: %w", sequence, n.Value, err)
	}
	return id, nil
}
