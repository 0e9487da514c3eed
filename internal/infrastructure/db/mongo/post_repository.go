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

const postCollection = "awareness_posts"

type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection(postCollection)}
}

type mongoPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	MediaURL   string             `bson:"media_url,omitempty"`
	MediaType  string             `bson:"media_type,omitempty"`
	AuthorID   string             `bson:"author_id"`
	AuthorName string             `bson:"author_name"`
	Likes      int                `bson:"likes"`
	LikedBy    []string           `bson:"liked_by"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (r *MongoPostRepository) Create(ctx context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toMongoPost(post))
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*domain.AwarenessPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return fromMongoPost(&mp), nil
}

func (r *MongoPostRepository) List(ctx context.Context) ([]*domain.AwarenessPost, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []*domain.AwarenessPost
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, fromMongoPost(&mp))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (r *MongoPostRepository) Update(ctx context.Context, post *domain.AwarenessPost) (*domain.AwarenessPost, error) {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoPost(post))
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (r *MongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func toMongoPost(p *domain.AwarenessPost) mongoPost {
	likedBy := p.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	return mongoPost{
		Title:      p.Title,
		Content:    p.Content,
		MediaURL:   p.MediaURL,
		MediaType:  p.MediaType,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		Likes:      p.Likes,
		LikedBy:    likedBy,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func fromMongoPost(mp *mongoPost) *domain.AwarenessPost {
	likedBy := mp.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}
	return &domain.AwarenessPost{
		ID:         mp.ID.Hex(),
		Title:      mp.Title,
		Content:    mp.Content,
		MediaURL:   mp.MediaURL,
		MediaType:  mp.MediaType,
		AuthorID:   mp.AuthorID,
		AuthorName: mp.AuthorName,
		Likes:      mp.Likes,
		LikedBy:    likedBy,
		CreatedAt:  mp.CreatedAt,
		UpdatedAt:  mp.UpdatedAt,
	}
}
