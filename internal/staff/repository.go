package staff

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Member is a staff profile mirrored from the identity provider's claims the
// first time the person uses the admin console.
type Member struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Sub       string             `json:"sub" bson:"sub"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Repository defines persistence operations for staff profiles.
type Repository interface {
	UpsertBySub(ctx context.Context, m *Member) (*Member, error)
	GetBySub(ctx context.Context, sub string) (*Member, error)
}

// MongoRepository implements Repository using MongoDB.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) UpsertBySub(ctx context.Context, m *Member) (*Member, error) {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	filter := bson.M{"sub": m.Sub}
	repl := bson.M{"$set": bson.M{
		"email":     m.Email,
		"name":      m.Name,
		"updatedAt": m.UpdatedAt,
		"createdAt": m.CreatedAt,
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated Member
	if err := r.col.FindOneAndUpdate(ctx, filter, repl, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			// Shouldn't happen because of upsert, but handle gracefully
			return m, nil
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepository) GetBySub(ctx context.Context, sub string) (*Member, error) {
	var m Member
	if err := r.col.FindOne(ctx, bson.M{"sub": sub}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
