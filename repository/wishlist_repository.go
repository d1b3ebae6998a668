package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/solvera/storefront-api/models"
)

// WishlistRepository stores wishlist entries in the "wishlists" collection,
// one document per saved product, scoped by user_id.
type WishlistRepository struct {
	collection *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{
		collection: db.Collection("wishlists"),
	}
}

func (r *WishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WishlistRepository) FindByProduct(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "product_id": productID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WishlistRepository) FindByID(ctx context.Context, userID, itemID uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.collection.FindOne(ctx, bson.M{"_id": itemID, "user_id": userID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *WishlistRepository) Insert(ctx context.Context, item *models.WishlistItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *WishlistRepository) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": itemID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
