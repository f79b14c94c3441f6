package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

const accountCollection = "accounts"

// MongoAccountRepository persists accounts in a single unified collection
// (the two legacy employee/user tables folded into one).
type MongoAccountRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{db: db, coll: db.Collection(accountCollection)}
}

type mongoAccount struct {
	ID           int64  `bson:"_id"`
	Name         string `bson:"lead_name"`
	Email        string `bson:"email"`
	Phone        string `bson:"phone_number"`
	PasswordHash string `bson:"password_hash"`
	Role         string `bson:"role"`
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	id, err := nextID(ctx, r.db, accountCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoAccount{
		ID:           id,
		Name:         account.Name,
		Email:        account.Email,
		Phone:        account.Phone,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ConflictError{Reason: "email or phone number already exists"}
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = id
	return &created, nil
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoAccountRepository) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"phone_number": phone})
}

func (r *MongoAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	update := bson.M{"$set": bson.M{
		"lead_name":    account.Name,
		"email":        account.Email,
		"phone_number": account.Phone,
		"role":         string(account.Role),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": account.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Reason: "email or phone number already exists"}
		}
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Reason: "no account found with the provided ID"}
	}
	return nil
}

func (r *MongoAccountRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Reason: "no account found with the provided ID"}
	}
	return nil
}

func (r *MongoAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
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
		accounts = append(accounts, ma.toDomain())
	}
	return accounts, cur.Err()
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Reason: "account not found"}
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

func (ma mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:           ma.ID,
		Name:         ma.Name,
		Email:        ma.Email,
		Phone:        ma.Phone,
		PasswordHash: ma.PasswordHash,
		Role:         domain.Role(ma.Role),
	}
}
