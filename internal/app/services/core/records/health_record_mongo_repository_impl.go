package records

import (
	"context"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HealthRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthRecordMongoRepository(db *mongo.Client, dbName string) contracts.HealthRecordRepository {
	return &HealthRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthRecords),
	}
}

func (r *HealthRecordMongoRepository) CreateHealthRecord(ctx context.Context, record *models.HealthRecord) (string, error) {
	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HealthRecordMongoRepository) FindHealthRecordByID(ctx context.Context, recordID string) (*models.HealthRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var record models.HealthRecord
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *HealthRecordMongoRepository) FindHealthRecords(ctx context.Context, filter contracts.HealthRecordFilter) ([]*models.HealthRecord, error) {
	query := bson.M{}
	if filter.OwnerID != "" {
		query["ownerId"] = filter.OwnerID
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Doctor != "" {
		query["doctorName"] = bson.M{"$regex": filter.Doctor, "$options": "i"}
	}
	if filter.Hospital != "" {
		query["hospitalName"] = bson.M{"$regex": filter.Hospital, "$options": "i"}
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}

	dateRange := bson.M{}
	if filter.From != "" {
		from, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateRange["$gte"] = from
	}
	if filter.To != "" {
		to, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateRange["$lte"] = to.Add(24*time.Hour - time.Nanosecond)
	}
	if len(dateRange) > 0 {
		query["visitDate"] = dateRange
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "visitDate", Value: -1}})
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var recordList []*models.HealthRecord
	if err := cursor.All(ctx, &recordList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return recordList, nil
}

func (r *HealthRecordMongoRepository) UpdateHealthRecord(ctx context.Context, record *models.HealthRecord) error {
	objectID, err := primitive.ObjectIDFromHex(record.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"type":           record.Type,
		"title":          record.Title,
		"doctorName":     record.DoctorName,
		"hospitalName":   record.HospitalName,
		"visitDate":      record.VisitDate,
		"notes":          record.Notes,
		"tags":           record.Tags,
		"attachmentName": record.AttachmentName,
		"updatedAt":      record.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HealthRecordMongoRepository) DeleteHealthRecord(ctx context.Context, recordID string) error {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *HealthRecordMongoRepository) CountHealthRecords(ctx context.Context) (int64, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return total, nil
}

func (r *HealthRecordMongoRepository) CountHealthRecordsByOwner(ctx context.Context, ownerIDs []string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ownerId": bson.M{"$in": ownerIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$ownerId", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		OwnerID string `bson:"_id"`
		Count   int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.OwnerID] = row.Count
	}
	return counts, nil
}

func (r *HealthRecordMongoRepository) AggregateRecordCountsByType(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Type  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

func (r *HealthRecordMongoRepository) AggregateRecordCountsByMonth(ctx context.Context) ([]responses.MonthlyCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$visitDate"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Month string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	monthly := make([]responses.MonthlyCount, 0, len(rows))
	for _, row := range rows {
		monthly = append(monthly, responses.MonthlyCount{Month: row.Month, Count: row.Count})
	}
	return monthly, nil
}

func (r *HealthRecordMongoRepository) AggregateTopHospitals(ctx context.Context, limit int) ([]responses.NamedCount, error) {
	if limit <= 0 {
		limit = 5
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"hospitalName": bson.M{"$nin": bson.A{"", nil}}}}},
		{{Key: "$group", Value: bson.M{"_id": "$hospitalName", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Name  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	hospitals := make([]responses.NamedCount, 0, len(rows))
	for _, row := range rows {
		hospitals = append(hospitals, responses.NamedCount{Name: row.Name, Count: row.Count})
	}
	return hospitals, nil
}
