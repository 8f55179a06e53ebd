package repository

import (
	"context"
	"errors"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubscriptionsTableName = "subscriptions"
	subscriptionsUserIDIndex      = "user_id-index"
	subscriptionsPaymentIDIndex   = "payment_id-index"
)

type subscriptionItem struct {
	ID           string  `dynamodbav:"id"`
	UserID       string  `dynamodbav:"user_id"`
	Tier         string  `dynamodbav:"tier"`
	Status       string  `dynamodbav:"status"`
	Amount       float64 `dynamodbav:"amount"`
	PaymentID    string  `dynamodbav:"payment_id,omitempty"`
	MPPayloadRaw string  `dynamodbav:"mp_payload_raw,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: payment_id-index (PK: payment_id)
type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
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
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByPaymentID(ctx context.Context, paymentID string) (entities.Subscription, error) {
	items, err := r.queryIndex(ctx, subscriptionsPaymentIDIndex, "payment_id", paymentID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(items) == 0 {
		return entities.Subscription{}, nil
	}
	return items[0], nil
}

func (r *SubscriptionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Subscription, error) {
	return r.queryIndex(ctx, subscriptionsUserIDIndex, "user_id", userID)
}

func (r *SubscriptionDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.SubscriptionStatus, mpPayload []byte) (entities.Subscription, error) {
	now := formatTime(time.Now())
	expr := "SET #status = :status, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if len(mpPayload) > 0 {
		expr += ", #mp_payload_raw = :mp_payload_raw"
		vals[":mp_payload_raw"] = &types.AttributeValueMemberS{Value: string(mpPayload)}
		names["#mp_payload_raw"] = "mp_payload_raw"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Subscription{}, nil
		}
		return entities.Subscription{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Subscription{}, nil
	}
	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func (r *SubscriptionDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Subscription, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Subscription, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subscriptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubscriptionItem(it))
	}
	return items, nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ID:           s.ID,
		UserID:       s.UserID,
		Tier:         string(s.Tier),
		Status:       string(s.Status),
		Amount:       s.Amount,
		PaymentID:    s.PaymentID,
		MPPayloadRaw: string(s.MPPayloadRaw),
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	s := entities.Subscription{
		ID:        it.ID,
		UserID:    it.UserID,
		Tier:      entities.SubscriptionTier(it.Tier),
		Status:    entities.SubscriptionStatus(it.Status),
		Amount:    it.Amount,
		PaymentID: it.PaymentID,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.MPPayloadRaw != "" {
		s.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return s
}
