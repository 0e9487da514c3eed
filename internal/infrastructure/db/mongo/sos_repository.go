package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

const sosCollection = "sos_requests"

type MongoSOSRepository struct {
	coll *mongo.Collection
}

func NewSOSRepository(db *mongo.Database) *MongoSOSRepository {
	return &MongoSOSRepository{coll: db.Collection(sosCollection)}
}

type mongoSOSRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RequesterName string             `bson:"requester_name"`
	Email         string             `bson:"email"`
	BloodGroup    string             `bson:"blood_group"`
	City          string             `bson:"city"`
	Phone         string             `bson:"phone,omitempty"`
	Status        string             `bson:"status"`
	MatchedDonors int                `bson:"matched_donors"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (r *MongoSOSRepository) Create(ctx context.Context, req *domain.SOSRequest) (*domain.SOSRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := mongoSOSRequest{
		RequesterName: req.RequesterName,
		Email:         req.Email,
		BloodGroup:    req.BloodGroup,
		City:          req.City,
		Phone:         req.Phone,
		Status:        string(req.Status),
		MatchedDonors: req.MatchedDonors,
		CreatedAt:     req.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert sos request: %w", err)
	}

	created := *req
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoSOSRepository) List(ctx context.Context) ([]*domain.SOSRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list sos requests: %w", err)
	}
	defer cur.Close(ctx)

	var requests []*domain.SOSRequest
	for cur.Next(ctx) {
		var ms mongoSOSRequest
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode sos request: %w", err)
		}
		requests = append(requests, &domain.SOSRequest{
			ID:            ms.ID.Hex(),
			RequesterName: ms.RequesterName,
			Email:         ms.Email,
			BloodGroup:    ms.BloodGroup,
			City:          ms.City,
			Phone:         ms.Phone,
			Status:        domain.SOSStatus(ms.Status),
			MatchedDonors: ms.MatchedDonors,
			CreatedAt:     ms.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate sos requests: %w", err)
	}
	return requests, nil
}
