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

const defaultTasksTableName = "tasks"

type taskItem struct {
	ID         int64  `dynamodbav:"id"`
	EstimateID int64  `dynamodbav:"estimate_id"`
	DueDate    string `dynamodbav:"due_date"`
	Completed  bool   `dynamodbav:"completed"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// estimate_id is stored without any foreign-key style guard; tasks survive
// the deletion of the estimate they reference.
type TaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb *dynamodb.Client) *TaskDynamoRepository {
	return &TaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TASKS_TABLE", defaultTasksTableName),
	}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	av, err := attributevalue.MarshalMap(toTaskItem(t))
	if err != nil {
		return entities.Task{}, err
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
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) List(ctx context.Context) ([]entities.Task, error) {
	var (
		out      []entities.Task
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
			var it taskItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromTaskItem(it))
		}

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}

	if out == nil {
		out = []entities.Task{}
	}
	return out, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Task, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: int64ToString(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Task{}, err
	}
	if len(out.Item) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func (r *TaskDynamoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (entities.Task, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: int64ToString(id)},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #completed = :completed, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed":  &types.AttributeValueMemberBOOL{Value: completed},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#completed":  "completed",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Task{}, nil
		}
		return entities.Task{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Task{}, nil
	}

	var it taskItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		ID:         t.ID,
		EstimateID: t.EstimateID,
		DueDate:    t.DueDate.UTC().Format(time.RFC3339Nano),
		Completed:  t.Completed,
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Task{
		ID:         it.ID,
		EstimateID: it.EstimateID,
		DueDate:    dueDate,
		Completed:  it.Completed,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
