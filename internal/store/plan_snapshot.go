package store

import (
	"context"
	"fmt"

	"github.com/hikaru-dev/soroban/ent"
	"github.com/hikaru-dev/soroban/ent/plansnapshot"
)

// planSnapshotRepo implements PlanSnapshotRepo with compare-and-swap on the
// version column.
type planSnapshotRepo struct {
	client *ent.Client
}

func (r *planSnapshotRepo) Save(ctx context.Context, planID string, expectedVersion int64, data map[string]any) (int64, error) {
	if expectedVersion == 0 {
		created, err := r.client.PlanSnapshot.Create().
			SetPlanID(planID).
			SetVersion(1).
			SetData(data).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return 0, ErrVersionConflict
			}
			return 0, fmt.Errorf("create plan snapshot: %w", err)
		}
		return created.Version, nil
	}

	n, err := r.client.PlanSnapshot.Update().
		Where(
			plansnapshot.PlanID(planID),
			plansnapshot.Version(expectedVersion),
		).
		SetVersion(expectedVersion + 1).
		SetData(data).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update plan snapshot: %w", err)
	}
	if n == 0 {
		// Either the snapshot vanished or another writer won the race.
		return 0, ErrVersionConflict
	}
	return expectedVersion + 1, nil
}

func (r *planSnapshotRepo) Get(ctx context.Context, planID string) (*PlanSnapshot, error) {
	s, err := r.client.PlanSnapshot.Query().
		Where(plansnapshot.PlanID(planID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan snapshot: %w", err)
	}
	return &PlanSnapshot{
		PlanID:    s.PlanID,
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
		Data:      s.Data,
	}, nil
}
