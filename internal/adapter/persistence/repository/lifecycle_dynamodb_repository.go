package repository

import (
	"context"
	"errors"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLifecycleTableName = "lifecycle_entities"
	lifecycleKindIndex        = "kind-index"
)

type statusEventItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	Note      string `dynamodbav:"note,omitempty"`
	Actor     string `dynamodbav:"actor,omitempty"`
}

type lifecycleEntityItem struct {
	ID        string            `dynamodbav:"id"`
	Kind      string            `dynamodbav:"kind"`
	Status    string            `dynamodbav:"status"`
	History   []statusEventItem `dynamodbav:"history"`
	CreatedAt string            `dynamodbav:"created_at"`
	UpdatedAt string            `dynamodbav:"updated_at"`
}

// LifecycleDynamoRepository persists lifecycle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: kind-index (PK: kind)
//
// The current status and the history list live on the same item, so the
// transition append is one conditional UpdateItem: the condition on the
// stored status is the compare-and-swap that keeps two racing transitions
// from both committing.

type LifecycleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILifecycleRepository = (*LifecycleDynamoRepository)(nil)

func NewLifecycleDynamoRepository(ddb *dynamodb.Client) *LifecycleDynamoRepository {
	return &LifecycleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LIFECYCLE_TABLE", defaultLifecycleTableName),
	}
}

func (r *LifecycleDynamoRepository) Create(ctx context.Context, e entities.LifecycleEntity) (entities.LifecycleEntity, error) {
	it := toLifecycleEntityItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.LifecycleEntity{}, err
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
		return entities.LifecycleEntity{}, err
	}
	return e, nil
}

func (r *LifecycleDynamoRepository) GetByID(ctx context.Context, id string) (entities.LifecycleEntity, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LifecycleEntity{}, err
	}
	if len(out.Item) == 0 {
		return entities.LifecycleEntity{}, nil
	}

	var it lifecycleEntityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LifecycleEntity{}, err
	}
	return fromLifecycleEntityItem(it), nil
}

func (r *LifecycleDynamoRepository) ListByKind(ctx context.Context, kind entities.EntityKind) ([]entities.LifecycleEntity, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lifecycleKindIndex),
		KeyConditionExpression: aws.String("kind = :kind"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
		},
	})
	if err != nil {
		return nil, err
	}

	list := make([]entities.LifecycleEntity, 0, len(out.Items))
	for _, raw := range out.Items {
		var it lifecycleEntityItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		list = append(list, fromLifecycleEntityItem(it))
	}
	return list, nil
}

func (r *LifecycleDynamoRepository) AppendEvent(ctx context.Context, id string, expected entities.Status, ev entities.StatusEvent) (entities.LifecycleEntity, error) {
	evAV, err := attributevalue.MarshalMap(toStatusEventItem(ev))
	if err != nil {
		return entities.LifecycleEntity{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at, #history = list_append(#history, :event)"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#history":    "history",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":status":     &types.AttributeValueMemberS{Value: string(ev.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(ev.Timestamp)},
			":event": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberM{Value: evAV},
			}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LifecycleEntity{}, nil
		}
		return entities.LifecycleEntity{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LifecycleEntity{}, nil
	}

	var it lifecycleEntityItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LifecycleEntity{}, err
	}
	return fromLifecycleEntityItem(it), nil
}

func (r *LifecycleDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toStatusEventItem(ev entities.StatusEvent) statusEventItem {
	return statusEventItem{
		Status:    string(ev.Status),
		Timestamp: formatTime(ev.Timestamp),
		Note:      ev.Note,
		Actor:     ev.Actor,
	}
}

func fromStatusEventItem(it statusEventItem) entities.StatusEvent {
	return entities.StatusEvent{
		Status:    entities.Status(it.Status),
		Timestamp: parseTime(it.Timestamp),
		Note:      it.Note,
		Actor:     it.Actor,
	}
}

func toLifecycleEntityItem(e entities.LifecycleEntity) lifecycleEntityItem {
	history := make([]statusEventItem, 0, len(e.History))
	for _, ev := range e.History {
		history = append(history, toStatusEventItem(ev))
	}
	return lifecycleEntityItem{
		ID:        e.ID,
		Kind:      string(e.Kind),
		Status:    string(e.CurrentStatus),
		History:   history,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func fromLifecycleEntityItem(it lifecycleEntityItem) entities.LifecycleEntity {
	history := make([]entities.StatusEvent, 0, len(it.History))
	for _, ev := range it.History {
		history = append(history, fromStatusEventItem(ev))
	}
	return entities.LifecycleEntity{
		ID:            it.ID,
		Kind:          entities.EntityKind(it.Kind),
		CurrentStatus: entities.Status(it.Status),
		History:       history,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
