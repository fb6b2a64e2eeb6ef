package repository

import (
	"context"

	"github.com/RamziBenssaci/ren-sub000/internal/domain/entities"
	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFacilitiesTableName = "facilities"

type facilityItem struct {
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	Sector            string `dynamodbav:"sector"`
	Category          string `dynamodbav:"category"`
	Status            string `dynamodbav:"status"`
	TotalClinics      int    `dynamodbav:"total_clinics"`
	WorkingClinics    int    `dynamodbav:"working_clinics"`
	OutOfOrderClinics int    `dynamodbav:"out_of_order_clinics"`
	NotWorkingClinics int    `dynamodbav:"not_working_clinics"`
}

// FacilityDynamoRepository persists facility records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type FacilityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFacilityRepository = (*FacilityDynamoRepository)(nil)

func NewFacilityDynamoRepository(ddb *dynamodb.Client) *FacilityDynamoRepository {
	return &FacilityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FACILITIES_TABLE", defaultFacilitiesTableName),
	}
}

func (r *FacilityDynamoRepository) Create(ctx context.Context, f entities.Facility) (entities.Facility, error) {
	av, err := attributevalue.MarshalMap(toFacilityItem(f))
	if err != nil {
		return entities.Facility{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Facility{}, err
	}
	return f, nil
}

func (r *FacilityDynamoRepository) GetByID(ctx context.Context, id string) (entities.Facility, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Facility{}, err
	}
	if len(out.Item) == 0 {
		return entities.Facility{}, nil
	}

	var it facilityItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Facility{}, err
	}
	return fromFacilityItem(it), nil
}

func (r *FacilityDynamoRepository) List(ctx context.Context) ([]entities.Facility, error) {
	var facilities []entities.Facility
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
			var it facilityItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			facilities = append(facilities, fromFacilityItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return facilities, nil
}

func (r *FacilityDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toFacilityItem(f entities.Facility) facilityItem {
	return facilityItem{
		ID:                f.ID,
		Name:              f.Name,
		Sector:            f.Sector,
		Category:          f.Category,
		Status:            string(f.Status),
		TotalClinics:      f.TotalClinics,
		WorkingClinics:    f.WorkingClinics,
		OutOfOrderClinics: f.OutOfOrderClinics,
		NotWorkingClinics: f.NotWorkingClinics,
	}
}

func fromFacilityItem(it facilityItem) entities.Facility {
	return entities.Facility{
		ID:                it.ID,
		Name:              it.Name,
		Sector:            it.Sector,
		Category:          it.Category,
		Status:            entities.FacilityStatus(it.Status),
		TotalClinics:      it.TotalClinics,
		WorkingClinics:    it.WorkingClinics,
		OutOfOrderClinics: it.OutOfOrderClinics,
		NotWorkingClinics: it.NotWorkingClinics,
	}
}
