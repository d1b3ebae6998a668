package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solvera/storefront-api/models"
)

// CartRepository stores cart lines in the "carts" collection, one document
// per line, scoped by user_id.
type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *CartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByProductAndSize locates the line that an add should merge into. A nil
// size only matches lines saved without a size.
func (r *CartRepository) FindByProductAndSize(ctx context.Context, userID, productID uuid.UUID, size *string) (*models.CartItem, error) {
	filter := bson.M{
		"user_id":    userID,
		"product_id": productID,
		"size":       size,
	}

	var item models.CartItem
	err := r.collection.FindOne(ctx, filter).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"_id": itemID, "user_id": userID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Insert(ctx context.Context, item *models.CartItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error {
	filter := bson.M{"_id": itemID, "user_id": userID}
	update := bson.M{"$set": bson.M{"quantity": quantity}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": itemID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CartRepository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
