package repository

import (
	"context"
	"fmt"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ContactDynamoRepository stores contact form enquiries (PK: id).
type ContactDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb dynamoAPI, tableName string) *ContactDynamoRepository {
	return &ContactDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	av, err := attributevalue.MarshalMap(contactItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.Contact{}, fmt.Errorf("marshal contact: %w", err)
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
			return entities.Contact{}, fmt.Errorf("contact %s: %w", c.ID, ErrDuplicateID)
		}
		return entities.Contact{}, err
	}
	return c, nil
}
