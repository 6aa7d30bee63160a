package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formapi/internal/model"
	"formapi/internal/repository"
)

// SubmissionMongo is a MongoDB implementation of
// repository.SubmissionRepository. Documents are keyed by their own id
// field; the driver-assigned _id is never exposed.
type SubmissionMongo struct {
	coll *mongo.Collection
}

// NewSubmissionMongo creates a new SubmissionMongo repository.
func NewSubmissionMongo(coll *mongo.Collection) *SubmissionMongo {
	return &SubmissionMongo{coll: coll}
}

var _ repository.SubmissionRepository = (*SubmissionMongo)(nil)

// Insert stores a single submission document.
func (r *SubmissionMongo) Insert(ctx context.Context, sub *model.Submission) error {
	_, err := r.coll.InsertOne(ctx, sub)
	return err
}

// List returns up to limit submissions in store order, excluding the
// internal _id field from the projection.
func (r *SubmissionMongo) List(ctx context.Context, limit int64) ([]model.Submission, error) {
	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	// cursor.All drains and closes the cursor.
	items := make([]model.Submission, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the document with the given id and reports whether one
// was deleted.
func (r *SubmissionMongo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
