package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/raoldfi/tennis-app-sub000/internal/domain/facility"
)

type FacilityRepository struct {
	mu    sync.RWMutex
	items map[string]facility.Facility
}

func NewFacilityRepository(facilities []facility.Facility) *FacilityRepository {
	items := make(map[string]facility.Facility, len(facilities))
	for _, f := range facilities {
		items[f.ID] = f
	}

	return &FacilityRepository{items: items}
}

func (r *FacilityRepository) List(_ context.Context) ([]facility.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]facility.Facility, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *FacilityRepository) GetByID(_ context.Context, facilityID string) (facility.Facility, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[facilityID]
	if !ok {
		return facility.Facility{}, false, nil
	}

	return f, true, nil
}
