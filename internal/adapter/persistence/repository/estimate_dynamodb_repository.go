package repository

import (
	"context"
	"fmt"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/infrastructure/database"
	"kalakruti_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// queryPageSize bounds each Query round trip while walking to an offset.
const queryPageSize = 100

type roomsItem struct {
	LivingRoom int `dynamodbav:"living_room"`
	Kitchen    int `dynamodbav:"kitchen"`
	Bedroom    int `dynamodbav:"bedroom"`
	Bathroom   int `dynamodbav:"bathroom"`
	Dining     int `dynamodbav:"dining"`
}

type homeItem struct {
	BHK          string     `dynamodbav:"bhk"`
	Size         string     `dynamodbav:"size,omitempty"`
	Package      string     `dynamodbav:"package"`
	Rooms        *roomsItem `dynamodbav:"rooms,omitempty"`
	MinPrice     int64      `dynamodbav:"min_price"`
	MaxPrice     *int64     `dynamodbav:"max_price,omitempty"`
	DisplayRange string     `dynamodbav:"display_range"`
}

type kitchenItem struct {
	Layout       string   `dynamodbav:"layout"`
	A            float64  `dynamodbav:"a"`
	B            *float64 `dynamodbav:"b,omitempty"`
	C            *float64 `dynamodbav:"c,omitempty"`
	Package      string   `dynamodbav:"package"`
	LinearFeet   float64  `dynamodbav:"linear_feet"`
	AssumedWidth float64  `dynamodbav:"assumed_width"`
	Area         float64  `dynamodbav:"area"`
	RatePerSqFt  float64  `dynamodbav:"rate_per_sqft"`
}

type wardrobeItem struct {
	Length       float64 `dynamodbav:"length"`
	Height       float64 `dynamodbav:"height"`
	Area         float64 `dynamodbav:"area"`
	Type         string  `dynamodbav:"type"`
	Package      string  `dynamodbav:"package"`
	PricePerSqFt float64 `dynamodbav:"price_per_sqft"`
}

type estimateItem struct {
	ID              string        `dynamodbav:"id"`
	Kind            string        `dynamodbav:"kind"`
	Name            string        `dynamodbav:"name"`
	Email           string        `dynamodbav:"email"`
	Phone           string        `dynamodbav:"phone"`
	PropertyName    string        `dynamodbav:"property_name,omitempty"`
	City            string        `dynamodbav:"city,omitempty"`
	Message         string        `dynamodbav:"message,omitempty"`
	WhatsappUpdates bool          `dynamodbav:"whatsapp_updates"`
	Home            *homeItem     `dynamodbav:"home,omitempty"`
	Kitchen         *kitchenItem  `dynamodbav:"kitchen,omitempty"`
	Wardrobe        *wardrobeItem `dynamodbav:"wardrobe,omitempty"`
	EstimatedPrice  int64         `dynamodbav:"estimated_price"`
	CreatedAt       string        `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists submitted estimates in DynamoDB.
//
// Table requirements (see database.EstimatesTableInput):
//   - PK: id (string)
//   - GSI kind-created_at-index: kind (hash) + created_at (range)
//
// Listing walks the GSI backwards, so offsets cost one read per skipped item.
// That is fine for the admin page sizes this serves.
type EstimateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb dynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("marshal estimate: %w", err)
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
		if isConditionFailed(err) {
			return entities.Estimate{}, fmt.Errorf("estimate %s: %w", e.ID, ErrDuplicateID)
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) List(ctx context.Context, kind entities.EstimateKind, offset, limit int) ([]entities.Estimate, error) {
	out := make([]entities.Estimate, 0, limit)
	if limit <= 0 {
		return out, nil
	}

	skipped := 0
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Query(ctx, r.kindQuery(kind, startKey, queryPageSize, false))
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Items {
			if skipped < offset {
				skipped++
				continue
			}
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, fmt.Errorf("unmarshal estimate: %w", err)
			}
			out = append(out, fromEstimateItem(it))
			if len(out) == limit {
				return out, nil
			}
		}

		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *EstimateDynamoRepository) Count(ctx context.Context, kind entities.EstimateKind) (int, error) {
	total := 0
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Query(ctx, r.kindQuery(kind, startKey, 0, true))
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
		if len(page.LastEvaluatedKey) == 0 {
			return total, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *EstimateDynamoRepository) kindQuery(kind entities.EstimateKind, startKey map[string]types.AttributeValue, pageSize int32, count bool) *dynamodb.QueryInput {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.EstimatesKindIndex),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
		},
		ScanIndexForward:  aws.Bool(false),
		ExclusiveStartKey: startKey,
	}
	if pageSize > 0 {
		in.Limit = aws.Int32(pageSize)
	}
	if count {
		in.Select = types.SelectCount
	}
	return in
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		ID:              e.ID,
		Kind:            string(e.Kind),
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		PropertyName:    e.PropertyName,
		City:            e.City,
		Message:         e.Message,
		WhatsappUpdates: e.WhatsappUpdates,
		EstimatedPrice:  e.EstimatedPrice,
		CreatedAt:       formatTime(e.CreatedAt),
	}
	if h := e.Home; h != nil {
		it.Home = &homeItem{
			BHK:          h.BHK,
			Size:         h.Size,
			Package:      h.Package,
			MinPrice:     h.MinPrice,
			MaxPrice:     h.MaxPrice,
			DisplayRange: h.DisplayRange,
		}
		if h.Rooms != nil {
			it.Home.Rooms = &roomsItem{
				LivingRoom: h.Rooms.LivingRoom,
				Kitchen:    h.Rooms.Kitchen,
				Bedroom:    h.Rooms.Bedroom,
				Bathroom:   h.Rooms.Bathroom,
				Dining:     h.Rooms.Dining,
			}
		}
	}
	if k := e.Kitchen; k != nil {
		it.Kitchen = &kitchenItem{
			Layout:       k.Layout,
			A:            k.A,
			B:            k.B,
			C:            k.C,
			Package:      k.Package,
			LinearFeet:   k.LinearFeet,
			AssumedWidth: k.AssumedWidth,
			Area:         k.Area,
			RatePerSqFt:  k.RatePerSqFt,
		}
	}
	if w := e.Wardrobe; w != nil {
		it.Wardrobe = &wardrobeItem{
			Length:       w.Length,
			Height:       w.Height,
			Area:         w.Area,
			Type:         w.Type,
			Package:      w.Package,
			PricePerSqFt: w.PricePerSqFt,
		}
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	e := entities.Estimate{
		ID:              it.ID,
		Kind:            entities.EstimateKind(it.Kind),
		Name:            it.Name,
		Email:           it.Email,
		Phone:           it.Phone,
		PropertyName:    it.PropertyName,
		City:            it.City,
		Message:         it.Message,
		WhatsappUpdates: it.WhatsappUpdates,
		EstimatedPrice:  it.EstimatedPrice,
		CreatedAt:       parseTime(it.CreatedAt),
	}
	if h := it.Home; h != nil {
		e.Home = &entities.HomeDetails{
			BHK:          h.BHK,
			Size:         h.Size,
			Package:      h.Package,
			MinPrice:     h.MinPrice,
			MaxPrice:     h.MaxPrice,
			DisplayRange: h.DisplayRange,
		}
		if h.Rooms != nil {
			e.Home.Rooms = &entities.RoomCounts{
				LivingRoom: h.Rooms.LivingRoom,
				Kitchen:    h.Rooms.Kitchen,
				Bedroom:    h.Rooms.Bedroom,
				Bathroom:   h.Rooms.Bathroom,
				Dining:     h.Rooms.Dining,
			}
		}
	}
	if k := it.Kitchen; k != nil {
		e.Kitchen = &entities.KitchenDetails{
			Layout:       k.Layout,
			A:            k.A,
			B:            k.B,
			C:            k.C,
			Package:      k.Package,
			LinearFeet:   k.LinearFeet,
			AssumedWidth: k.AssumedWidth,
			Area:         k.Area,
			RatePerSqFt:  k.RatePerSqFt,
		}
	}
	if w := it.Wardrobe; w != nil {
		e.Wardrobe = &entities.WardrobeDetails{
			Length:       w.Length,
			Height:       w.Height,
			Area:         w.Area,
			Type:         w.Type,
			Package:      w.Package,
			PricePerSqFt: w.PricePerSqFt,
		}
	}
	return e
}
