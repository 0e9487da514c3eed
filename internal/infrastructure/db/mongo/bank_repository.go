package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodlink/coordination-api/internal/core/domain"
)

const bankCollection = "blood_banks"

type MongoBankRepository struct {
	coll *mongo.Collection
}

func NewBankRepository(db *mongo.Database) *MongoBankRepository {
	return &MongoBankRepository{coll: db.Collection(bankCollection)}
}

type mongoBankCampaign struct {
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Date        time.Time `bson:"date"`
}

type mongoBank struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Name      string              `bson:"name"`
	Email     string              `bson:"email,omitempty"`
	City      string              `bson:"city"`
	Stock     domain.BloodStock   `bson:"blood_stock"`
	Campaigns []mongoBankCampaign `bson:"campaigns"`
	CreatedAt time.Time           `bson:"created_at"`
}

func (r *MongoBankRepository) Create(ctx context.Context, bank *domain.BloodBank) (*domain.BloodBank, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	campaigns := make([]mongoBankCampaign, len(bank.Campaigns))
	for i, c := range bank.Campaigns {
		campaigns[i] = mongoBankCampaign(c)
	}
	doc := mongoBank{
		Name:      bank.Name,
		Email:     bank.Email,
		City:      bank.City,
		Stock:     bank.Stock,
		Campaigns: campaigns,
		CreatedAt: bank.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert bank: %w", err)
	}

	created := *bank
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoBankRepository) FindByID(ctx context.Context, id string) (*domain.BloodBank, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBankNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var mb mongoBank
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBankNotFound
		}
		return nil, fmt.Errorf("find bank: %w", err)
	}
	return fromMongoBank(&mb), nil
}

func (r *MongoBankRepository) List(ctx context.Context) ([]*domain.BloodBank, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer cur.Close(ctx)

	var banks []*domain.BloodBank
	for cur.Next(ctx) {
		var mb mongoBank
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode bank: %w", err)
		}
		banks = append(banks, fromMongoBank(&mb))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate banks: %w", err)
	}
	return banks, nil
}

func (r *MongoBankRepository) AppendCampaign(ctx context.Context, id string, campaign domain.BankCampaign) (*domain.BloodBank, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBankNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"campaigns": mongoBankCampaign(campaign)},
	})
	if err != nil {
		return nil, fmt.Errorf("append bank campaign: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBankNotFound
	}

	return r.FindByID(ctx, id)
}

func fromMongoBank(mb *mongoBank) *domain.BloodBank {
	campaigns := make([]domain.BankCampaign, len(mb.Campaigns))
	for i, c := range mb.Campaigns {
		campaigns[i] = domain.BankCampaign(c)
	}
	return &domain.BloodBank{
		ID:        mb.ID.Hex(),
		Name:      mb.Name,
		Email:     mb.Email,
		City:      mb.City,
		Stock:     mb.Stock,
		Campaigns: campaigns,
		CreatedAt: mb.CreatedAt,
	}
}
