package repository

import (
	"context"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCostRecordsTableName = "cost_records"
	costRecordsSessionIDIndex   = "session_id-index"
)

type costRecordItem struct {
	ID           string  `dynamodbav:"id"`
	SessionID    string  `dynamodbav:"session_id"`
	Provider     string  `dynamodbav:"provider"`
	Model        string  `dynamodbav:"model"`
	SectionID    string  `dynamodbav:"section_id"`
	InputTokens  int     `dynamodbav:"input_tokens"`
	OutputTokens int     `dynamodbav:"output_tokens"`
	Cost         float64 `dynamodbav:"cost"`
	RetryCount   int     `dynamodbav:"retry_count"`
	DurationMs   int64   `dynamodbav:"duration_ms"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// CostRecordDynamoRepository is the append-only ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
//
// created_at is written in a fixed-width layout; date range reads scan with a
// string filter on it.
type CostRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostRecordRepository = (*CostRecordDynamoRepository)(nil)

func NewCostRecordDynamoRepository(ddb *dynamodb.Client) *CostRecordDynamoRepository {
	return &CostRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COST_RECORDS_TABLE", defaultCostRecordsTableName),
	}
}

func (r *CostRecordDynamoRepository) Record(ctx context.Context, rec entities.CostRecord) (entities.CostRecord, error) {
	av, err := attributevalue.MarshalMap(toCostRecordItem(rec))
	if err != nil {
		return entities.CostRecord{}, err
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
		return entities.CostRecord{}, err
	}
	return rec, nil
}

func (r *CostRecordDynamoRepository) ListBySessionID(ctx context.Context, sessionID string) ([]entities.CostRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(costRecordsSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
	})

	var out []entities.CostRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		recs, err := decodeCostRecords(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func (r *CostRecordDynamoRepository) ListBetween(ctx context.Context, from, to time.Time) ([]entities.CostRecord, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#created_at >= :from AND #created_at < :to"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatSortableTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatSortableTime(to)},
		},
	})

	var out []entities.CostRecord
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		recs, err := decodeCostRecords(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func decodeCostRecords(raw []map[string]types.AttributeValue) ([]entities.CostRecord, error) {
	out := make([]entities.CostRecord, 0, len(raw))
	for _, m := range raw {
		var it costRecordItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCostRecordItem(it))
	}
	return out, nil
}

func toCostRecordItem(r entities.CostRecord) costRecordItem {
	return costRecordItem{
		ID:           r.ID,
		SessionID:    r.SessionID,
		Provider:     r.Provider,
		Model:        r.Model,
		SectionID:    r.SectionID,
		InputTokens:  r.InputTokens,
		OutputTokens: r.OutputTokens,
		Cost:         r.Cost,
		RetryCount:   r.RetryCount,
		DurationMs:   r.DurationMs,
		CreatedAt:    formatSortableTime(r.CreatedAt),
	}
}

func fromCostRecordItem(it costRecordItem) entities.CostRecord {
	return entities.CostRecord{
		ID:           it.ID,
		SessionID:    it.SessionID,
		Provider:     it.Provider,
		Model:        it.Model,
		SectionID:    it.SectionID,
		InputTokens:  it.InputTokens,
		OutputTokens: it.OutputTokens,
		Cost:         it.Cost,
		RetryCount:   it.RetryCount,
		DurationMs:   it.DurationMs,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
