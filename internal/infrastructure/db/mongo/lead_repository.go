package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurasalon/salon-system/internal/core/domain"
)

const leadCollection = "leads"

type MongoLeadRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *MongoLeadRepository {
	return &MongoLeadRepository{db: db, coll: db.Collection(leadCollection)}
}

type mongoLead struct {
	ID      int64  `bson:"_id"`
	Name    string `bson:"lead_name"`
	Service string `bson:"service"`
	Phone   string `bson:"phone_number"`
	Inquiry string `bson:"query"`
	Status  string `bson:"status"`
}

func (r *MongoLeadRepository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	id, err := nextID(ctx, r.db, leadCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoLead{
		ID:      id,
		Name:    lead.Name,
		Service: lead.Service,
		Phone:   lead.Phone,
		Inquiry: lead.Inquiry,
		Status:  string(lead.Status),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ConflictError{Reason: "lead with this phone number already exists"}
		}
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	created := *lead
	created.ID = id
	return &created, nil
}

func (r *MongoLeadRepository) FindByID(ctx context.Context, id int64) (*domain.Lead, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoLeadRepository) FindByPhone(ctx context.Context, phone string) (*domain.Lead, error) {
	return r.findOne(ctx, bson.M{"phone_number": phone})
}

func (r *MongoLeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	update := bson.M{"$set": bson.M{
		"lead_name": lead.Name,
		"service":   lead.Service,
		"query":     lead.Inquiry,
		"status":    string(lead.Status),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": lead.ID}, update)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if res.MatchedCount == 0 {
		return &domain.NotFoundError{Reason: "no lead found with the provided ID"}
	}
	return nil
}

func (r *MongoLeadRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if res.DeletedCount == 0 {
		return &domain.NotFoundError{Reason: "no lead found with the provided ID"}
	}
	return nil
}

func (r *MongoLeadRepository) List(ctx context.Context) ([]*domain.Lead, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	var leads []*domain.Lead
	for cur.Next(ctx) {
		var ml mongoLead
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, ml.toDomain())
	}
	return leads, cur.Err()
}

func (r *MongoLeadRepository) CountByStatus(ctx context.Context, status domain.LeadStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count leads by status: %w", err)
	}
	return n, nil
}

func (r *MongoLeadRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

func (r *MongoLeadRepository) findOne(ctx context.Context, filter bson.M) (*domain.Lead, error) {
	var ml mongoLead
	if err := r.coll.FindOne(ctx, filter).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &domain.NotFoundError{Reason: "lead not found"}
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return ml.toDomain(), nil
}

func (ml mongoLead) toDomain() *domain.Lead {
	return &domain.Lead{
		ID:      ml.ID,
		Name:    ml.Name,
		Service: ml.Service,
		Phone:   ml.Phone,
		Inquiry: ml.Inquiry,
		Status:  domain.LeadStatus(ml.Status),
	}
}
