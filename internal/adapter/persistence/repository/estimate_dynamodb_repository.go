package repository

import (
	"context"
	"errors"
	"time"

	"stonecraft/internal/domain/entities"
	"stonecraft/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID             int64   `dynamodbav:"id"`
	Material       string  `dynamodbav:"material"`
	Length         float64 `dynamodbav:"length"`
	Width          float64 `dynamodbav:"width"`
	Thickness      float64 `dynamodbav:"thickness"`
	EdgeFinish     string  `dynamodbav:"edge_finish"`
	MaterialCost   float64 `dynamodbav:"material_cost"`
	EdgeFinishCost float64 `dynamodbav:"edge_finish_cost"`
	LaborCost      float64 `dynamodbav:"labor_cost"`
	TaxRate        float64 `dynamodbav:"tax_rate"`
	Discount       float64 `dynamodbav:"discount"`
	Cost           float64 `dynamodbav:"cost"`
	Status         string  `dynamodbav:"status"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Ids come from the counters table (see SequenceDynamoAllocator), so the
// conditional writes here only guard against allocator misuse and against
// replacing rows that were deleted concurrently.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	var (
		out      []entities.Estimate
		startKey map[string]types.AttributeValue
	)

	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromEstimateItem(it))
		}

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}

	if out == nil {
		out = []entities.Estimate{}
	}
	return out, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: int64ToString(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) Replace(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: int64ToString(id)},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:             e.ID,
		Material:       e.Material,
		Length:         e.Length,
		Width:          e.Width,
		Thickness:      e.Thickness,
		EdgeFinish:     e.EdgeFinish,
		MaterialCost:   e.MaterialCost,
		EdgeFinishCost: e.EdgeFinishCost,
		LaborCost:      e.LaborCost,
		TaxRate:        e.TaxRate,
		Discount:       e.Discount,
		Cost:           e.Cost,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Estimate{
		ID:             it.ID,
		Material:       it.Material,
		Length:         it.Length,
		Width:          it.Width,
		Thickness:      it.Thickness,
		EdgeFinish:     it.EdgeFinish,
		MaterialCost:   it.MaterialCost,
		EdgeFinishCost: it.EdgeFinishCost,
		LaborCost:      it.LaborCost,
		TaxRate:        it.TaxRate,
		Discount:       it.Discount,
		Cost:           it.Cost,
		Status:         entities.EstimateStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
