package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/models"
	"github.com/ShravaniSindagi00/AI-Powered-Interview-Assistant/internal/repositories"
)

const candidatesCollection = "candidates"

// CandidateRepository wraps the candidates collection.
type CandidateRepository struct{ col *mongo.Collection }

// NewCandidateRepository ensures the unique email index that backs the
// duplicate-email conflict rule.
func NewCandidateRepository(c *Client) (*CandidateRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	col := db.Collection(candidatesCollection)
	r := &CandidateRepository{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
	})

	return r, nil
}

func (r *CandidateRepository) Create(ctx context.Context, c *models.Candidate) error {
	_, err := r.col.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicateEmail
	}
	return err
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) List(ctx context.Context) ([]models.Candidate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Candidate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CandidateRepository) Update(ctx context.Context, c *models.Candidate) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
