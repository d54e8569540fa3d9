package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentRepository struct {
	collection *mongo.Collection
}

var _ contract.IAppointmentRepository = (*AppointmentRepository)(nil)

func NewAppointmentRepository(collection *mongo.Collection) *AppointmentRepository {
	return &AppointmentRepository{collection: collection}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if _, err := r.collection.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("appointment not found")
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appointment, nil
}

func (r *AppointmentRepository) find(ctx context.Context, filter bson.M) ([]entity.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []entity.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) FindHoldingSlots(ctx context.Context, specialistID string, from, to time.Time) ([]entity.Appointment, error) {
	return r.find(ctx, bson.M{
		"specialist_id": specialistID,
		"status":        bson.M{"$in": entity.SlotHoldingStatuses()},
		"date":          bson.M{"$gte": from, "$lt": to},
	})
}

func (r *AppointmentRepository) List(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.SpecialistID != "" {
		query["specialist_id"] = filter.SpecialistID
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	return r.find(ctx, query)
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, from entity.AppointmentStatus, changes entity.AppointmentChanges) (*entity.Appointment, error) {
	set := bson.M{"status": changes.Status, "updated_at": time.Now()}
	if changes.AdminNotes != nil {
		set["admin_notes"] = *changes.AdminNotes
	}
	if changes.MeetingLink != nil {
		set["meeting_link"] = *changes.MeetingLink
	}

	filter := bson.M{"_id": id, "status": from}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.Appointment
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, apperror.Conflict("appointment status changed concurrently, reload and retry")
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound("appointment not found")
	}
	return nil
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context) (map[entity.AppointmentStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$status"}, {Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status entity.AppointmentStatus `bson:"_id"`
		Count  int64                    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode appointment counts: %w", err)
	}
	counts := make(map[entity.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
