package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultInventoryTableName = "inventory_items"

type withdrawalOrderItem struct {
	OrderNumber         string `dynamodbav:"order_number"`
	Quantity            int64  `dynamodbav:"quantity"`
	BeneficiaryFacility string `dynamodbav:"beneficiary_facility"`
	RecipientName       string `dynamodbav:"recipient_name"`
	RecipientContact    string `dynamodbav:"recipient_contact,omitempty"`
	Status              string `dynamodbav:"status"`
	CreatedAt           string `dynamodbav:"created_at"`
}

type inventoryItemItem struct {
	ItemNumber       string                `dynamodbav:"item_number"`
	ItemName         string                `dynamodbav:"item_name"`
	ReceivedQty      int64                 `dynamodbav:"received_qty"`
	IssuedQty        int64                 `dynamodbav:"issued_qty"`
	AvailableQty     int64                 `dynamodbav:"available_qty"`
	MinQuantity      int64                 `dynamodbav:"min_quantity"`
	PurchaseValue    string                `dynamodbav:"purchase_value"`
	SupplierName     string                `dynamodbav:"supplier_name,omitempty"`
	WithdrawalOrders []withdrawalOrderItem `dynamodbav:"withdrawal_orders"`
	CreatedAt        string                `dynamodbav:"created_at"`
	UpdatedAt        string                `dynamodbav:"updated_at"`
}

// InventoryDynamoRepository persists inventory items in DynamoDB.
//
// Table requirements:
//   - PK: item_number (string)
//
// The derived available_qty is stored alongside issued_qty so ApplyWithdrawal
// can guard and adjust both in one conditional UpdateItem. Every other write
// path recomputes available_qty before saving, so the stored value never
// drifts from max(0, received-issued).

type InventoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventoryRepository = (*InventoryDynamoRepository)(nil)

func NewInventoryDynamoRepository(ddb *dynamodb.Client) *InventoryDynamoRepository {
	return &InventoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTORY_TABLE", defaultInventoryTableName),
	}
}

func (r *InventoryDynamoRepository) Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItemItem(item))
	if err != nil {
		return entities.InventoryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "item_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryDynamoRepository) GetByItemNumber(ctx context.Context, itemNumber string) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_number": &types.AttributeValueMemberS{Value: itemNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItemItem(it), nil
}

func (r *InventoryDynamoRepository) List(ctx context.Context) ([]entities.InventoryItem, error) {
	var items []entities.InventoryItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it inventoryItemItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInventoryItemItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

// ApplyWithdrawal is the atomic check-then-mutate: the stock guard, the
// quantity arithmetic and the order append commit together or not at all.
func (r *InventoryDynamoRepository) ApplyWithdrawal(ctx context.Context, itemNumber string, order entities.WithdrawalOrder) (entities.InventoryItem, error) {
	orderAV, err := attributevalue.MarshalMap(toWithdrawalOrderItem(order))
	if err != nil {
		return entities.InventoryItem{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_number": &types.AttributeValueMemberS{Value: itemNumber},
		},
		ConditionExpression: aws.String("attribute_exists(#pk) AND #available >= :qty"),
		UpdateExpression: aws.String(
			"SET #issued = #issued + :qty, #available = #available - :qty, #updated_at = :updated_at, #orders = list_append(#orders, :order)"),
		ExpressionAttributeNames: map[string]string{
			"#pk":         "item_number",
			"#issued":     "issued_qty",
			"#available":  "available_qty",
			"#updated_at": "updated_at",
			"#orders":     "withdrawal_orders",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty":        &types.AttributeValueMemberN{Value: strconv.FormatInt(order.Quantity, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(order.CreatedAt)},
			":order": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberM{Value: orderAV},
			}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItemItem(it), nil
}

func (r *InventoryDynamoRepository) Save(ctx context.Context, item entities.InventoryItem, expectedUpdatedAt time.Time) (entities.InventoryItem, error) {
	item.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toInventoryItemItem(item))
	if err != nil {
		return entities.InventoryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#pk) AND #updated_at = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#pk":         "item_number",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: formatTime(expectedUpdatedAt)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventoryDynamoRepository) Delete(ctx context.Context, itemNumber string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_number": &types.AttributeValueMemberS{Value: itemNumber},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toWithdrawalOrderItem(o entities.WithdrawalOrder) withdrawalOrderItem {
	return withdrawalOrderItem{
		OrderNumber:         o.OrderNumber,
		Quantity:            o.Quantity,
		BeneficiaryFacility: o.BeneficiaryFacility,
		RecipientName:       o.RecipientName,
		RecipientContact:    o.RecipientContact,
		Status:              string(o.Status),
		CreatedAt:           formatTime(o.CreatedAt),
	}
}

func fromWithdrawalOrderItem(it withdrawalOrderItem) entities.WithdrawalOrder {
	return entities.WithdrawalOrder{
		OrderNumber:         it.OrderNumber,
		Quantity:            it.Quantity,
		BeneficiaryFacility: it.BeneficiaryFacility,
		RecipientName:       it.RecipientName,
		RecipientContact:    it.RecipientContact,
		Status:              entities.WithdrawalStatus(it.Status),
		CreatedAt:           parseTime(it.CreatedAt),
	}
}

func toInventoryItemItem(i entities.InventoryItem) inventoryItemItem {
	orders := make([]withdrawalOrderItem, 0, len(i.WithdrawalOrders))
	for _, o := range i.WithdrawalOrders {
		orders = append(orders, toWithdrawalOrderItem(o))
	}
	return inventoryItemItem{
		ItemNumber:       i.ItemNumber,
		ItemName:         i.ItemName,
		ReceivedQty:      i.ReceivedQty,
		IssuedQty:        i.IssuedQty,
		AvailableQty:     i.AvailableQty,
		MinQuantity:      i.MinQuantity,
		PurchaseValue:    i.PurchaseValue.String(),
		SupplierName:     i.SupplierName,
		WithdrawalOrders: orders,
		CreatedAt:        formatTime(i.CreatedAt),
		UpdatedAt:        formatTime(i.UpdatedAt),
	}
}

func fromInventoryItemItem(it inventoryItemItem) entities.InventoryItem {
	orders := make([]entities.WithdrawalOrder, 0, len(it.WithdrawalOrders))
	for _, o := range it.WithdrawalOrders {
		orders = append(orders, fromWithdrawalOrderItem(o))
	}
	value, _ := decimal.NewFromString(it.PurchaseValue)
	return entities.InventoryItem{
		ItemNumber:       it.ItemNumber,
		ItemName:         it.ItemName,
		ReceivedQty:      it.ReceivedQty,
		IssuedQty:        it.IssuedQty,
		AvailableQty:     it.AvailableQty,
		MinQuantity:      it.MinQuantity,
		PurchaseValue:    value,
		SupplierName:     it.SupplierName,
		WithdrawalOrders: orders,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
