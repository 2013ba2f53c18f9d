package rooms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/testutil"
)

func TestRepository_CreateAndList(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	a, err := repo.Create(ctx, &domain.Room{Name: "Hall A", Capacity: 10})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &domain.Room{Name: "Hall B", Capacity: 25})
	require.NoError(t, err)
	require.Less(t, a.ID, b.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Registration order (ascending key)
	assert.Equal(t, "Hall A", list[0].Name)
	assert.Equal(t, "Hall B", list[1].Name)

	stored, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Capacity)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
