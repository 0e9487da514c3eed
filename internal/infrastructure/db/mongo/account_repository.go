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

const accountCollection = "accounts"

// opTimeout bounds every storage operation so a degraded backend
// produces a fast error instead of a hanging request.
const opTimeout = 5 * time.Second

type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(accountCollection)}
}

// EnsureIndexes creates the unique index on email. The index is the
// correctness backstop for concurrent registrations: a race past the
// existence check surfaces as a duplicate-key error, never a second
// account.
func (r *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoMedicalRecord struct {
	Weight              float64    `bson:"weight"`
	BloodPressure       string     `bson:"blood_pressure"`
	Hemoglobin          float64    `bson:"hemoglobin"`
	LastDonationDate    *time.Time `bson:"last_donation_date,omitempty"`
	EligibleForDonation bool       `bson:"eligible_for_donation"`
	MedicalNotes        string     `bson:"medical_notes,omitempty"`
	CheckupBy           string     `bson:"checkup_by"`
	RecordedAt          time.Time  `bson:"recorded_at"`
}

type mongoDonation struct {
	Date       time.Time `bson:"date"`
	Location   string    `bson:"location"`
	QuantityML int       `bson:"quantity_ml"`
}

type mongoAccount struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"`
	Name            string               `bson:"name"`
	Email           string               `bson:"email"`
	PasswordHash    string               `bson:"password_hash"`
	Role            string               `bson:"role"`
	IsDonor         bool                 `bson:"is_donor"`
	BloodGroup      string               `bson:"blood_group,omitempty"`
	Phone           string               `bson:"phone,omitempty"`
	City            string               `bson:"city,omitempty"`
	MedicalRecords  []mongoMedicalRecord `bson:"medical_records"`
	DonationHistory []mongoDonation      `bson:"donation_history"`
	Badges          []string             `bson:"badges"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := toMongoAccount(account)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoAccountRepository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Email, created_at and the append-only sequences are deliberately
	// outside this $set.
	update := bson.M{"$set": bson.M{
		"name":          account.Name,
		"password_hash": account.PasswordHash,
		"role":          account.Role,
		"is_donor":      account.IsDonor,
		"blood_group":   account.BloodGroup,
		"phone":         account.Phone,
		"city":          account.City,
		"updated_at":    account.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoAccountRepository) AppendMedicalRecord(ctx context.Context, id string, record domain.MedicalRecord) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"medical_records": mongoMedicalRecord(record)},
		"$set":  bson.M{"updated_at": record.RecordedAt},
	}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("append medical record: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoAccountRepository) AppendDonation(ctx context.Context, id string, donation domain.Donation, badges []string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"donation_history": mongoDonation(donation)},
		"$set":  bson.M{"badges": badges, "updated_at": time.Now().UTC()},
	}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("append donation: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoAccountRepository) List(ctx context.Context, donorsOnly bool) ([]*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{}
	if donorsOnly {
		filter["is_donor"] = true
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []*domain.Account
	for cur.Next(ctx) {
		var ma mongoAccount
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, fromMongoAccount(&ma))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return fromMongoAccount(&ma), nil
}

func toMongoAccount(a *domain.Account) mongoAccount {
	records := make([]mongoMedicalRecord, len(a.MedicalRecords))
	for i, rec := range a.MedicalRecords {
		records[i] = mongoMedicalRecord(rec)
	}
	donations := make([]mongoDonation, len(a.DonationHistory))
	for i, d := range a.DonationHistory {
		donations[i] = mongoDonation(d)
	}
	badges := a.Badges
	if badges == nil {
		badges = []string{}
	}
	return mongoAccount{
		Name:            a.Name,
		Email:           a.Email,
		PasswordHash:    a.PasswordHash,
		Role:            a.Role,
		IsDonor:         a.IsDonor,
		BloodGroup:      a.BloodGroup,
		Phone:           a.Phone,
		City:            a.City,
		MedicalRecords:  records,
		DonationHistory: donations,
		Badges:          badges,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func fromMongoAccount(ma *mongoAccount) *domain.Account {
	records := make([]domain.MedicalRecord, len(ma.MedicalRecords))
	for i, rec := range ma.MedicalRecords {
		records[i] = domain.MedicalRecord(rec)
	}
	donations := make([]domain.Donation, len(ma.DonationHistory))
	for i, d := range ma.DonationHistory {
		donations[i] = domain.Donation(d)
	}
	badges := ma.Badges
	if badges == nil {
		badges = []string{}
	}
	return &domain.Account{
		ID:              ma.ID.Hex(),
		Name:            ma.Name,
		Email:           ma.Email,
		PasswordHash:    ma.PasswordHash,
		Role:            ma.Role,
		IsDonor:         ma.IsDonor,
		BloodGroup:      ma.BloodGroup,
		Phone:           ma.Phone,
		City:            ma.City,
		MedicalRecords:  records,
		DonationHistory: donations,
		Badges:          badges,
		CreatedAt:       ma.CreatedAt,
		UpdatedAt:       ma.UpdatedAt,
	}
}
