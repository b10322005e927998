// Package service composes repository results into the shapes the API
// serves: room summaries, building-level average ratings and the map-facing
// listings.
package service

import (
	"context"

	"github.com/flushfinder/flushfinder/internal/model"
	"github.com/flushfinder/flushfinder/internal/repository"
)

// Aggregator turns raw review rows into room- and building-level ratings.
// It holds no state of its own; every call is a storage round trip.
type Aggregator struct {
	Buildings *repository.BuildingRepo
	Rooms     *repository.RoomRepo
	Reviews   *repository.ReviewRepo
}

// NewAggregator wires the aggregator to its repositories.
func NewAggregator(b *repository.BuildingRepo, rm *repository.RoomRepo, rv *repository.ReviewRepo) *Aggregator {
	return &Aggregator{Buildings: b, Rooms: rm, Reviews: rv}
}

// BuildingRating is the aggregate of every review across a building's
// rooms. A building with no reviews gets the sentinel rating 0 together
// with an empty review list; callers cannot tell that apart from a genuine
// zero rating, which is a known quirk of the original contract kept here
// on purpose.
type BuildingRating struct {
	BRN     string
	Rating  float64
	Reviews []*model.Review
}

// SummarizeRoom returns count, mean stars and last review time for a room.
// The zero-review case yields nil average and nil timestamp, never NaN.
func (a *Aggregator) SummarizeRoom(ctx context.Context, roomID string) (*repository.RoomSummary, error) {
	return a.Reviews.SummarizeRoom(ctx, roomID)
}

// AverageBuildingRating collects every review of the building's rooms and
// computes the arithmetic mean of their star ratings as a float64. No
// rounding is applied; formatting is a presentation concern. The review
// list is always non-nil.
func (a *Aggregator) AverageBuildingRating(ctx context.Context, brn string) (*BuildingRating, error) {
	reviews, err := a.Reviews.ListByBuilding(ctx, brn)
	if err != nil {
		return nil, err
	}
	out := &BuildingRating{BRN: brn, Reviews: reviews}
	if out.Reviews == nil {
		out.Reviews = []*model.Review{}
	}
	if len(reviews) == 0 {
		return out, nil
	}
	sum := 0
	for _, rv := range reviews {
		sum += rv.Stars
	}
	out.Rating = float64(sum) / float64(len(reviews))
	return out, nil
}

// ListRooms returns a building's rooms ordered by floor then room number,
// rooms without a floor first.
func (a *Aggregator) ListRooms(ctx context.Context, brn string) ([]*model.Room, error) {
	return a.Rooms.ListByBuilding(ctx, brn)
}

// ListBuildings returns all buildings with coordinates passed through as
// stored.
func (a *Aggregator) ListBuildings(ctx context.Context) ([]*model.Building, error) {
	return a.Buildings.ListAll(ctx)
}
