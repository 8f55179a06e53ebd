package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/acg-data/bizgenius-sub001/internal/domain/entities"
	"github.com/acg-data/bizgenius-sub001/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName = "generation_sessions"
	sessionsUserIDIndex      = "user_id-index"
)

type sessionItem struct {
	ID           string         `dynamodbav:"id"`
	UserID       string         `dynamodbav:"user_id"`
	Idea         string         `dynamodbav:"idea"`
	Answers      map[string]any `dynamodbav:"answers,omitempty"`
	Branding     map[string]any `dynamodbav:"branding,omitempty"`
	Status       string         `dynamodbav:"status"`
	CurrentStep  string         `dynamodbav:"current_step,omitempty"`
	Progress     int            `dynamodbav:"progress"`
	ResultJSON   string         `dynamodbav:"result_json,omitempty"`
	ErrorMessage string         `dynamodbav:"error_message,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
	UpdatedAt    string         `dynamodbav:"updated_at"`
	CompletedAt  string         `dynamodbav:"completed_at,omitempty"`
}

// SessionDynamoRepository persists GenerationSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The report is stored as a JSON string (result_json) so section payloads
// keep their exact shape across reads.
type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.GenerationSession) (entities.GenerationSession, error) {
	it, err := toSessionItem(s)
	if err != nil {
		return entities.GenerationSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.GenerationSession{}, err
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
		return entities.GenerationSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.GenerationSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GenerationSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.GenerationSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GenerationSession{}, err
	}
	return fromSessionItem(it)
}

func (r *SessionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.GenerationSession, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(sessionsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})

	items := []entities.GenerationSession{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it sessionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			s, err := fromSessionItem(it)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
	}
	return items, nil
}

func (r *SessionDynamoRepository) Update(ctx context.Context, id string, patch entities.SessionUpdate) (entities.GenerationSession, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr, vals, names, err := buildSessionUpdate(patch, now)
		if err != nil {
			return "", nil, nil, err
		}
		if patch.ExpectedStatus != nil {
			vals[":expected_status"] = &types.AttributeValueMemberS{Value: string(*patch.ExpectedStatus)}
			names["#status"] = "status"
		}
		return expr, vals, names, nil
	}, sessionCondition(patch))
}

// sessionCondition guards every update on the item existing and, when the
// patch asks for it, on the stored status.
func sessionCondition(patch entities.SessionUpdate) string {
	if patch.ExpectedStatus != nil {
		return "attribute_exists(#id) AND #status = :expected_status"
	}
	return "attribute_exists(#id)"
}

func (r *SessionDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
	condition string,
) (entities.GenerationSession, error) {
	now := formatTime(time.Now())
	updateExpr, values, names, err := build(now)
	if err != nil {
		return entities.GenerationSession{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String(condition),
		UpdateExpression:                    aws.String(updateExpr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The old item comes back only when it exists, so its presence
			// means the status precondition failed.
			if len(cfe.Item) > 0 {
				return entities.GenerationSession{}, interfaces.ErrSessionStatusConflict
			}
			return entities.GenerationSession{}, nil
		}
		return entities.GenerationSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.GenerationSession{}, nil
	}
	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.GenerationSession{}, err
	}
	return fromSessionItem(it)
}

// buildSessionUpdate turns a patch into an UpdateExpression. Cleared string
// fields are REMOVEd; completing a session also sets completed_at.
func buildSessionUpdate(patch entities.SessionUpdate, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	sets := []string{"#updated_at = :updated_at"}
	var removes []string
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
	}

	if patch.Status != nil {
		sets = append(sets, "#status = :status")
		vals[":status"] = &types.AttributeValueMemberS{Value: string(*patch.Status)}
		names["#status"] = "status"
		if *patch.Status == entities.SessionStatusCompleted {
			sets = append(sets, "#completed_at = :completed_at")
			vals[":completed_at"] = &types.AttributeValueMemberS{Value: now}
			names["#completed_at"] = "completed_at"
		}
	}
	if patch.CurrentStep != nil {
		names["#current_step"] = "current_step"
		if *patch.CurrentStep == "" {
			removes = append(removes, "#current_step")
		} else {
			sets = append(sets, "#current_step = :current_step")
			vals[":current_step"] = &types.AttributeValueMemberS{Value: *patch.CurrentStep}
		}
	}
	if patch.Progress != nil {
		sets = append(sets, "#progress = :progress")
		vals[":progress"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*patch.Progress)}
		names["#progress"] = "progress"
	}
	if patch.Result != nil {
		b, err := json.Marshal(patch.Result)
		if err != nil {
			return "", nil, nil, err
		}
		sets = append(sets, "#result_json = :result_json")
		vals[":result_json"] = &types.AttributeValueMemberS{Value: string(b)}
		names["#result_json"] = "result_json"
	}
	if patch.ErrorMessage != nil {
		names["#error_message"] = "error_message"
		if *patch.ErrorMessage == "" {
			removes = append(removes, "#error_message")
		} else {
			sets = append(sets, "#error_message = :error_message")
			vals[":error_message"] = &types.AttributeValueMemberS{Value: *patch.ErrorMessage}
		}
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, vals, names, nil
}

func toSessionItem(s entities.GenerationSession) (sessionItem, error) {
	it := sessionItem{
		ID:           s.ID,
		UserID:       s.UserID,
		Idea:         s.Idea,
		Answers:      s.Answers,
		Branding:     s.Branding,
		Status:       string(s.Status),
		CurrentStep:  s.CurrentStep,
		Progress:     s.Progress,
		ErrorMessage: s.ErrorMessage,
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
	if s.Result != nil {
		b, err := json.Marshal(s.Result)
		if err != nil {
			return sessionItem{}, err
		}
		it.ResultJSON = string(b)
	}
	if s.CompletedAt != nil {
		it.CompletedAt = formatTime(*s.CompletedAt)
	}
	return it, nil
}

func fromSessionItem(it sessionItem) (entities.GenerationSession, error) {
	s := entities.GenerationSession{
		ID:           it.ID,
		UserID:       it.UserID,
		Idea:         it.Idea,
		Answers:      it.Answers,
		Branding:     it.Branding,
		Status:       entities.SessionStatus(it.Status),
		CurrentStep:  it.CurrentStep,
		Progress:     it.Progress,
		ErrorMessage: it.ErrorMessage,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
	if it.ResultJSON != "" {
		if err := json.Unmarshal([]byte(it.ResultJSON), &s.Result); err != nil {
			return entities.GenerationSession{}, err
		}
	}
	if it.CompletedAt != "" {
		t := parseTime(it.CompletedAt)
		s.CompletedAt = &t
	}
	return s, nil
}
