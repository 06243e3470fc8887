package file

import (
	"context"

	"github.com/dtroode/chessacademy-server/internal/model"
)

var _ model.AvailabilityStore = (*AvailabilityRepository)(nil)

type availabilityDocument struct {
	Schedules map[string]model.Schedule `json:"schedules"`
}

// AvailabilityRepository keeps every schedule in availability.json. A replace
// rewrites the whole document in a single write.
type AvailabilityRepository struct {
	doc *document[availabilityDocument]
}

func NewAvailabilityRepository(storage model.Storage) *AvailabilityRepository {
	return &AvailabilityRepository{doc: newDocument[availabilityDocument](storage, availabilityKey)}
}

func (r *AvailabilityRepository) Get(ctx context.Context, username string) (model.Schedule, error) {
	doc, err := r.doc.read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Schedules[username].Compact(), nil
}

func (r *AvailabilityRepository) Replace(ctx context.Context, username string, schedule model.Schedule) error {
	compact := schedule.Compact()
	return r.doc.update(ctx, func(doc *availabilityDocument) error {
		if doc.Schedules == nil {
			doc.Schedules = make(map[string]model.Schedule)
		}
		if len(compact) == 0 {
			delete(doc.Schedules, username)
			return nil
		}
		doc.Schedules[username] = compact
		return nil
	})
}
