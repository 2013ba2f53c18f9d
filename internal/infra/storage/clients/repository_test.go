package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/testutil"
)

func TestRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Client{Name: "Jane", Surname: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.Name)
	assert.Equal(t, "Doe", stored.Surname)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestRepository_List_OrderedBySurname(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for _, c := range []*domain.Client{
		{Name: "Maria", Surname: "Zavala"},
		{Name: "Ana", Surname: "Alvarez"},
		{Name: "Berta", Surname: "Alvarez"},
	} {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "Berta", list[1].Name)
	assert.Equal(t, "Zavala", list[2].Surname)
}
