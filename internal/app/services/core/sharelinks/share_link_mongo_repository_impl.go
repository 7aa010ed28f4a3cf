package sharelinks

import (
	"context"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ShareLinkMongoRepository struct {
	Collection *mongo.Collection
}

func NewShareLinkMongoRepository(db *mongo.Client, dbName string) contracts.ShareLinkRepository {
	return &ShareLinkMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShareLinks),
	}
}

// EnsureIndexes guarantees token uniqueness. Tokens carry 128 bits of
// entropy so collisions are not expected, the index is the backstop.
func (r *ShareLinkMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ShareLinkMongoRepository) CreateShareLink(ctx context.Context, link *models.ShareLink) (string, error) {
	result, err := r.Collection.InsertOne(ctx, link)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ShareLinkMongoRepository) FindShareLinkByToken(ctx context.Context, token string) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.Collection.FindOne(ctx, bson.M{"token": token}).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &link, nil
}
