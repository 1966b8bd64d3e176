package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/database"
)

var _ database.LocationStore = (*LocationStore)(nil)

type LocationStore struct {
	coll *mongo.Collection
}

func NewLocationStore(coll *mongo.Collection) *LocationStore {
	return &LocationStore{coll: coll}
}

// Upsert writes the record under the camion id with merge semantics:
// fields absent from the update are preserved, and the timestamp is
// assigned by the server on every write.
func (s *LocationStore) Upsert(ctx context.Context, camionID string, rec *domain.StoredLocationRecord) error {
	_, err := s.coll.UpdateByID(ctx, camionID,
		upsertUpdate(rec),
		options.Update().SetUpsert(true),
	)
	return err
}

func upsertUpdate(rec *domain.StoredLocationRecord) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "fltLatitud", Value: rec.Latitud},
			{Key: "fltLongitud", Value: rec.Longitud},
			{Key: "vchNombre", Value: rec.Nombre},
		}},
		{Key: "$currentDate", Value: bson.D{
			{Key: "timestamp", Value: true},
		}},
	}
}

// Probe is a cheap read against the collection. An empty collection is
// still a healthy collection.
func (s *LocationStore) Probe(ctx context.Context) error {
	err := s.coll.FindOne(ctx, bson.D{}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}
