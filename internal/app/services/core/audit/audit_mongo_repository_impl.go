package audit

import (
	"context"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Client, dbName string) contracts.AuditLogRepository {
	return &AuditMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAuditLogs),
	}
}

func (r *AuditMongoRepository) CreateAuditLog(ctx context.Context, entry *models.AuditLog) error {
	_, err := r.Collection.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AuditMongoRepository) FindAuditLogsByUser(ctx context.Context, userID string, page, pageSize int) ([]*models.AuditLog, int64, error) {
	return r.findAuditLogs(ctx, bson.M{"userId": userID}, page, pageSize)
}

func (r *AuditMongoRepository) FindAllAuditLogs(ctx context.Context, page, pageSize int) ([]*models.AuditLog, int64, error) {
	return r.findAuditLogs(ctx, bson.M{}, page, pageSize)
}

func (r *AuditMongoRepository) findAuditLogs(ctx context.Context, filter bson.M, page, pageSize int) ([]*models.AuditLog, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if page > 0 && pageSize > 0 {
		findOptions.SetSkip(int64((page - 1) * pageSize)).SetLimit(int64(pageSize))
	}

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var entries []*models.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return entries, total, nil
}
