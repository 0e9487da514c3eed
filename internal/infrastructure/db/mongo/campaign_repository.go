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
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

const campaignCollection = "campaigns"

type MongoCampaignRepository struct {
	coll *mongo.Collection
}

func NewCampaignRepository(db *mongo.Database) *MongoCampaignRepository {
	return &MongoCampaignRepository{coll: db.Collection(campaignCollection)}
}

type mongoCampaign struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Title             string             `bson:"title"`
	Description       string             `bson:"description"`
	Date              time.Time          `bson:"date"`
	Location          string             `bson:"location"`
	Organizer         string             `bson:"organizer"`
	Email             string             `bson:"email"`
	Phone             string             `bson:"phone,omitempty"`
	City              string             `bson:"city"`
	TargetDonors      int                `bson:"target_donors"`
	RegisteredDonors  int                `bson:"registered_donors"`
	Status            string             `bson:"status"`
	BloodGroupsNeeded []string           `bson:"blood_groups_needed"`
	CreatedAt         time.Time          `bson:"created_at"`
}

func (r *MongoCampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoCampaign(campaign))
	if err != nil {
		return nil, fmt.Errorf("insert campaign: %w", err)
	}

	created := *campaign
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCampaignRepository) FindByID(ctx context.Context, id string) (*domain.Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCampaignNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var mc mongoCampaign
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	return fromMongoCampaign(&mc), nil
}

func (r *MongoCampaignRepository) List(ctx context.Context, filter ports.CampaignFilter) ([]*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.City != "" {
		query["city"] = bson.M{"$regex": filter.City, "$options": "i"}
	}

	cur, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer cur.Close(ctx)

	var campaigns []*domain.Campaign
	for cur.Next(ctx) {
		var mc mongoCampaign
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode campaign: %w", err)
		}
		campaigns = append(campaigns, fromMongoCampaign(&mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *MongoCampaignRepository) Update(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(campaign.ID)
	if err != nil {
		return nil, domain.ErrCampaignNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := toMongoCampaign(campaign)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCampaignNotFound
	}
	return campaign, nil
}

func (r *MongoCampaignRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCampaignNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func toMongoCampaign(c *domain.Campaign) mongoCampaign {
	return mongoCampaign{
		Title:             c.Title,
		Description:       c.Description,
		Date:              c.Date,
		Location:          c.Location,
		Organizer:         c.Organizer,
		Email:             c.Email,
		Phone:             c.Phone,
		City:              c.City,
		TargetDonors:      c.TargetDonors,
		RegisteredDonors:  c.RegisteredDonors,
		Status:            string(c.Status),
		BloodGroupsNeeded: c.BloodGroupsNeeded,
		CreatedAt:         c.CreatedAt,
	}
}

func fromMongoCampaign(mc *mongoCampaign) *domain.Campaign {
	return &domain.Campaign{
		ID:                mc.ID.Hex(),
		Title:             mc.Title,
		Description:       mc.Description,
		Date:              mc.Date,
		Location:          mc.Location,
		Organizer:         mc.Organizer,
		Email:             mc.Email,
		Phone:             mc.Phone,
		City:              mc.City,
		TargetDonors:      mc.TargetDonors,
		RegisteredDonors:  mc.RegisteredDonors,
		Status:            domain.CampaignStatus(mc.Status),
		BloodGroupsNeeded: mc.BloodGroupsNeeded,
		CreatedAt:         mc.CreatedAt,
	}
}
