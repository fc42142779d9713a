package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"rental_escrow/internal/domain/entities"
	"rental_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEscrowsTableName = "escrows"

type escrowItem struct {
	ID               string            `dynamodbav:"id"`
	Landlord         string            `dynamodbav:"landlord"`
	Tenant           string            `dynamodbav:"tenant,omitempty"`
	PropertyRef      string            `dynamodbav:"property_ref,omitempty"`
	Status           string            `dynamodbav:"status"`
	LeaseStart       string            `dynamodbav:"lease_start,omitempty"`
	LeaseEnd         string            `dynamodbav:"lease_end,omitempty"`
	LeaseEvents      map[string]string `dynamodbav:"lease_events,omitempty"`
	AutoApprovalDays int               `dynamodbav:"auto_approval_days"`
	Buckets          []bucketItem      `dynamodbav:"buckets"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
	ClosedAt         string            `dynamodbav:"closed_at,omitempty"`
	Version          int64             `dynamodbav:"version"`
}

type bucketItem struct {
	ID                  string     `dynamodbav:"id"`
	Kind                string     `dynamodbav:"kind"`
	Amount              int64      `dynamodbav:"amount"`
	PolicyType          string     `dynamodbav:"policy_type"`
	PolicyDate          string     `dynamodbav:"policy_date,omitempty"`
	PolicyEvent         string     `dynamodbav:"policy_event,omitempty"`
	PolicyOffsetDays    int        `dynamodbav:"policy_offset_days,omitempty"`
	Recipient           string     `dynamodbav:"recipient"`
	State               string     `dynamodbav:"state"`
	DueAt               string     `dynamodbav:"due_at,omitempty"`
	ReleasedAt          string     `dynamodbav:"released_at,omitempty"`
	PayoutStatus        string     `dynamodbav:"payout_status,omitempty"`
	PayoutAttempts      int        `dynamodbav:"payout_attempts"`
	LastPayoutRequestAt string     `dynamodbav:"last_payout_request_at,omitempty"`
	LastPayoutError     string     `dynamodbav:"last_payout_error,omitempty"`
	ProviderPaymentID   string     `dynamodbav:"provider_payment_id,omitempty"`
	DisputedBy          string     `dynamodbav:"disputed_by,omitempty"`
	DisputedAt          string     `dynamodbav:"disputed_at,omitempty"`
	VoteRound           int        `dynamodbav:"vote_round"`
	Votes               []voteItem `dynamodbav:"votes,omitempty"`
}

type voteItem struct {
	Party    string `dynamodbav:"party"`
	Decision string `dynamodbav:"decision"`
	Round    int    `dynamodbav:"round"`
	VotedAt  string `dynamodbav:"voted_at"`
}

// dynamoAPI is the subset of *dynamodb.Client the repository calls.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// EscrowDynamoRepository persists the escrow aggregate in DynamoDB, one item
// per escrow with its buckets and votes nested.
//
// Table requirements:
//   - PK: id (string)
//
// Writes are conditional on the stored version.

type EscrowDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEscrowRepository = (*EscrowDynamoRepository)(nil)

func NewEscrowDynamoRepository(ddb *dynamodb.Client) *EscrowDynamoRepository {
	return newEscrowDynamoRepository(ddb, getenvDefault("ESCROWS_TABLE", defaultEscrowsTableName))
}

func newEscrowDynamoRepository(ddb dynamoAPI, tableName string) *EscrowDynamoRepository {
	return &EscrowDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EscrowDynamoRepository) Create(ctx context.Context, e entities.Escrow) (entities.Escrow, error) {
	e.Version = 1
	av, err := attributevalue.MarshalMap(toEscrowItem(e))
	if err != nil {
		return entities.Escrow{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Escrow{}, interfaces.ErrEscrowAlreadyExists
		}
		return entities.Escrow{}, err
	}
	return e, nil
}

func (r *EscrowDynamoRepository) GetByID(ctx context.Context, id string) (entities.Escrow, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Escrow{}, err
	}
	if len(out.Item) == 0 {
		return entities.Escrow{}, nil
	}

	var it escrowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Escrow{}, err
	}
	return fromEscrowItem(it), nil
}

func (r *EscrowDynamoRepository) Update(ctx context.Context, e entities.Escrow) (entities.Escrow, error) {
	expected := e.Version
	e.Version++
	av, err := attributevalue.MarshalMap(toEscrowItem(e))
	if err != nil {
		return entities.Escrow{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Escrow{}, interfaces.ErrVersionConflict
		}
		return entities.Escrow{}, err
	}
	return e, nil
}

// ListActiveIDs scans for non-terminal escrows. A table of active leases is
// small enough for a filtered scan; ordering happens client side.
func (r *EscrowDynamoRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("#id, #created_at"),
		FilterExpression:     aws.String("NOT #status IN (:closed, :cancelled)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#created_at": "created_at",
			"#status":     "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":closed":    &types.AttributeValueMemberS{Value: string(entities.EscrowStatusClosed)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entities.EscrowStatusCancelled)},
		},
	})

	type row struct {
		ID        string `dynamodbav:"id"`
		CreatedAt string `dynamodbav:"created_at"`
	}
	var rows []row
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []row
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		rows = append(rows, page...)
	}

	sort.Slice(rows, func(i, j int) bool {
		ti, tj := parseTime(rows[i].CreatedAt), parseTime(rows[j].CreatedAt)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return rows[i].ID < rows[j].ID
	})
	ids := make([]string, 0, len(rows))
	for _, rw := range rows {
		ids = append(ids, rw.ID)
	}
	return ids, nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func toEscrowItem(e entities.Escrow) escrowItem {
	it := escrowItem{
		ID:               e.ID,
		Landlord:         e.Landlord,
		Tenant:           e.Tenant,
		PropertyRef:      e.PropertyRef,
		Status:           string(e.Status),
		LeaseStart:       formatTimePtr(e.LeaseStart),
		LeaseEnd:         formatTimePtr(e.LeaseEnd),
		AutoApprovalDays: e.AutoApprovalDays,
		Buckets:          make([]bucketItem, 0, len(e.Buckets)),
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
		ClosedAt:         formatTimePtr(e.ClosedAt),
		Version:          e.Version,
	}
	if len(e.LeaseEvents) > 0 {
		it.LeaseEvents = make(map[string]string, len(e.LeaseEvents))
		for ev, at := range e.LeaseEvents {
			it.LeaseEvents[string(ev)] = formatTime(at)
		}
	}
	for _, b := range e.Buckets {
		bi := bucketItem{
			ID:                  b.ID,
			Kind:                string(b.Kind),
			Amount:              b.Amount,
			PolicyType:          string(b.Policy.Type),
			PolicyDate:          formatTimePtr(b.Policy.Date),
			PolicyEvent:         string(b.Policy.Event),
			PolicyOffsetDays:    b.Policy.OffsetDays,
			Recipient:           string(b.Recipient),
			State:               string(b.State),
			DueAt:               formatTimePtr(b.DueAt),
			ReleasedAt:          formatTimePtr(b.ReleasedAt),
			PayoutStatus:        string(b.PayoutStatus),
			PayoutAttempts:      b.PayoutAttempts,
			LastPayoutRequestAt: formatTimePtr(b.LastPayoutRequestAt),
			LastPayoutError:     b.LastPayoutError,
			ProviderPaymentID:   b.ProviderPaymentID,
			DisputedBy:          string(b.DisputedBy),
			DisputedAt:          formatTimePtr(b.DisputedAt),
			VoteRound:           b.VoteRound,
		}
		for _, v := range b.Votes {
			bi.Votes = append(bi.Votes, voteItem{
				Party:    string(v.Party),
				Decision: string(v.Decision),
				Round:    v.Round,
				VotedAt:  formatTime(v.VotedAt),
			})
		}
		it.Buckets = append(it.Buckets, bi)
	}
	return it
}

func fromEscrowItem(it escrowItem) entities.Escrow {
	e := entities.Escrow{
		ID:               it.ID,
		Landlord:         it.Landlord,
		Tenant:           it.Tenant,
		PropertyRef:      it.PropertyRef,
		Status:           entities.EscrowStatus(it.Status),
		LeaseStart:       parseTimePtr(it.LeaseStart),
		LeaseEnd:         parseTimePtr(it.LeaseEnd),
		AutoApprovalDays: it.AutoApprovalDays,
		Buckets:          make([]entities.FundBucket, 0, len(it.Buckets)),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
		ClosedAt:         parseTimePtr(it.ClosedAt),
		Version:          it.Version,
	}
	if len(it.LeaseEvents) > 0 {
		e.LeaseEvents = make(map[entities.LeaseEvent]time.Time, len(it.LeaseEvents))
		for ev, at := range it.LeaseEvents {
			e.LeaseEvents[entities.LeaseEvent(ev)] = parseTime(at)
		}
	}
	for _, bi := range it.Buckets {
		b := entities.FundBucket{
			ID:     bi.ID,
			Kind:   entities.BucketKind(bi.Kind),
			Amount: bi.Amount,
			Policy: entities.ReleasePolicy{
				Type:       entities.PolicyType(bi.PolicyType),
				Date:       parseTimePtr(bi.PolicyDate),
				Event:      entities.LeaseEvent(bi.PolicyEvent),
				OffsetDays: bi.PolicyOffsetDays,
			},
			Recipient:           entities.PartyRole(bi.Recipient),
			State:               entities.BucketState(bi.State),
			DueAt:               parseTimePtr(bi.DueAt),
			ReleasedAt:          parseTimePtr(bi.ReleasedAt),
			PayoutStatus:        entities.PayoutStatus(bi.PayoutStatus),
			PayoutAttempts:      bi.PayoutAttempts,
			LastPayoutRequestAt: parseTimePtr(bi.LastPayoutRequestAt),
			LastPayoutError:     bi.LastPayoutError,
			ProviderPaymentID:   bi.ProviderPaymentID,
			DisputedBy:          entities.PartyRole(bi.DisputedBy),
			DisputedAt:          parseTimePtr(bi.DisputedAt),
			VoteRound:           bi.VoteRound,
		}
		for _, v := range bi.Votes {
			b.Votes = append(b.Votes, entities.ApprovalVote{
				BucketID: bi.ID,
				Party:    entities.PartyRole(v.Party),
				Decision: entities.VoteDecision(v.Decision),
				Round:    v.Round,
				VotedAt:  parseTime(v.VotedAt),
			})
		}
		e.Buckets = append(e.Buckets, b)
	}
	return e
}
