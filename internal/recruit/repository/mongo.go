package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifewood/careers-backend/internal/recruit"
)

// MongoApplicationRepo implements ApplicationRepository on a Mongo collection.
type MongoApplicationRepo struct {
	col *mongo.Collection
}

func NewMongoApplicationRepo(col *mongo.Collection) *MongoApplicationRepo {
	// submittedAt drives both admin listing order and the trends window scan
	idx := mongo.IndexModel{Keys: bson.D{{Key: "submittedAt", Value: -1}}}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoApplicationRepo{col: col}
}

func (r *MongoApplicationRepo) Create(ctx context.Context, app *recruit.Application) (string, error) {
	app.SubmittedAt = time.Now().UTC()
	app.Viewed = false
	res, err := r.col.InsertOne(ctx, app)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	app.ID = oid
	return oid.Hex(), nil
}

func (r *MongoApplicationRepo) List(ctx context.Context) ([]*recruit.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*recruit.Application{}
	for cur.Next(ctx) {
		var a recruit.Application
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

func (r *MongoApplicationRepo) Get(ctx context.Context, id string) (*recruit.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var a recruit.Application
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *MongoApplicationRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record when present. A missing id is not an error,
// matching the store's delete-if-exists semantics.
func (r *MongoApplicationRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// MarkAllViewed flips viewed=false records one write at a time. The batch is
// not atomic; a crash mid-way is safe because the operation is re-runnable.
func (r *MongoApplicationRepo) MarkAllViewed(ctx context.Context) (int64, error) {
	cur, err := r.col.Find(ctx, bson.M{"viewed": false})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	var n int64
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return n, err
		}
		if _, err := r.col.UpdateByID(ctx, doc.ID, bson.M{"$set": bson.M{"viewed": true}}); err != nil {
			return n, err
		}
		n++
	}
	return n, cur.Err()
}

func (r *MongoApplicationRepo) ListSubmittedSince(ctx context.Context, since time.Time) ([]*recruit.Application, error) {
	cur, err := r.col.Find(ctx, bson.M{"submittedAt": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*recruit.Application{}
	for cur.Next(ctx) {
		var a recruit.Application
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

// MongoInquiryRepo implements InquiryRepository on a Mongo collection.
type MongoInquiryRepo struct {
	col *mongo.Collection
}

func NewMongoInquiryRepo(col *mongo.Collection) *MongoInquiryRepo {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "submittedAt", Value: -1}}}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoInquiryRepo{col: col}
}

func (r *MongoInquiryRepo) Create(ctx context.Context, inq *recruit.Inquiry) (string, error) {
	inq.SubmittedAt = time.Now().UTC()
	inq.Viewed = false
	res, err := r.col.InsertOne(ctx, inq)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	inq.ID = oid
	return oid.Hex(), nil
}

func (r *MongoInquiryRepo) List(ctx context.Context) ([]*recruit.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*recruit.Inquiry{}
	for cur.Next(ctx) {
		var q recruit.Inquiry
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, &q)
	}
	return out, cur.Err()
}

func (r *MongoInquiryRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *MongoInquiryRepo) MarkAllViewed(ctx context.Context) (int64, error) {
	cur, err := r.col.Find(ctx, bson.M{"viewed": false})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)
	var n int64
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return n, err
		}
		if _, err := r.col.UpdateByID(ctx, doc.ID, bson.M{"$set": bson.M{"viewed": true}}); err != nil {
			return n, err
		}
		n++
	}
	return n, cur.Err()
}

// MongoPositionRepo implements PositionRepository on a Mongo collection.
type MongoPositionRepo struct {
	col *mongo.Collection
}

func NewMongoPositionRepo(col *mongo.Collection) *MongoPositionRepo {
	return &MongoPositionRepo{col: col}
}

func (r *MongoPositionRepo) Create(ctx context.Context, doc map[string]any) (string, error) {
	delete(doc, "_id")
	res, err := r.col.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MongoPositionRepo) List(ctx context.Context) ([]*recruit.Position, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*recruit.Position{}
	for cur.Next(ctx) {
		var p recruit.Position
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoPositionRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
