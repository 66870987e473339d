package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"transportbilty/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "transportbilty"

type MongoBiltyRepo struct {
	DB *mongo.Client
}

func NewMongoBiltyRepo(db *mongo.Client) *MongoBiltyRepo {
	return &MongoBiltyRepo{DB: db}
}

func (r *MongoBiltyRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("transport_bilty")
}

// nextID allocates a sequential numeric id from a counters collection so ids
// stay compatible with the Postgres backend.
func (r *MongoBiltyRepo) nextID(ctx context.Context) (int64, error) {
	counters := r.DB.Database(mongoDatabase).Collection("counters")
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "transport_bilty"},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// sortDoc mirrors the Postgres ORDER BY: requested column first, _id as the
// tie-break key in the same direction.
func sortDoc(field string, ascending bool) bson.D {
	dir := -1
	if ascending {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// ------------------------ Create ------------------------

func (r *MongoBiltyRepo) CreateBilty(ctx context.Context, bilty *models.Bilty) error {
	now := time.Now().UTC()
	if bilty.CreatedAt.IsZero() {
		bilty.CreatedAt = now
	}
	bilty.UpdatedAt = now

	if bilty.ID == 0 {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		bilty.ID = id
	}

	_, err := r.collection().InsertOne(ctx, bilty)
	return err
}

// ------------------------ Reads ------------------------

func (r *MongoBiltyRepo) GetBiltyByID(ctx context.Context, id int64) (*models.Bilty, error) {
	var b models.Bilty
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MongoBiltyRepo) LatestByField(ctx context.Context, field, value string) (*models.Bilty, error) {
	if !IsSuggestField(field) {
		return nil, fmt.Errorf("lookup on unknown field %q", field)
	}
	var b models.Bilty
	err := r.collection().FindOne(ctx,
		bson.M{field: value},
		options.FindOne().SetSort(sortDoc("created_at", false)),
	).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MongoBiltyRepo) MostRecentBilty(ctx context.Context) (*models.Bilty, error) {
	var b models.Bilty
	err := r.collection().FindOne(ctx,
		bson.M{},
		options.FindOne().SetSort(sortDoc("created_at", false)),
	).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MongoBiltyRepo) Suggest(ctx context.Context, field, prefix string, limit int) ([]string, error) {
	if !IsSuggestField(field) {
		return nil, fmt.Errorf("suggestions on unknown field %q", field)
	}

	filter := bson.M{field: bson.M{
		"$regex":   "^" + regexp.QuoteMeta(prefix),
		"$options": "i",
	}}
	cur, err := r.collection().Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: field, Value: 1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{field: 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	seen := make(map[string]bool)
	values := []string{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		v, _ := doc[field].(string)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, cur.Err()
}

// ------------------------ Listing ------------------------

func (r *MongoBiltyRepo) ListBilty(ctx context.Context, p ListParams) ([]*models.Bilty, int64, error) {
	sortField := p.SortField
	if !IsSortField(sortField) {
		sortField = "bilty_date"
	}

	filter := bson.M{}
	if p.Search != "" {
		pattern := regexp.QuoteMeta(p.Search)
		or := make([]bson.M, len(searchFields))
		for i, col := range searchFields {
			or[i] = bson.M{col: bson.M{"$regex": pattern, "$options": "i"}}
		}
		filter = bson.M{"$or": or}
	}

	total, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := r.collection().Find(ctx, filter, options.Find().
		SetSort(sortDoc(sortField, p.SortAscending)).
		SetSkip(int64((p.Page-1)*p.PageSize)).
		SetLimit(int64(p.PageSize)))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var result []*models.Bilty
	for cur.Next(ctx) {
		var b models.Bilty
		if err := cur.Decode(&b); err != nil {
			return nil, 0, err
		}
		result = append(result, &b)
	}
	return result, total, cur.Err()
}

// ------------------------ Delete ------------------------

func (r *MongoBiltyRepo) DeleteBilty(ctx context.Context, id int64) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("bilty not found")
	}
	return nil
}
