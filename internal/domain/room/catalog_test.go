//go:build unit

package room_test

import (
	"testing"

	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := room.DefaultCatalog()
	require.Equal(t, 6, c.Len())

	r, ok := c.Find("ch-11")
	require.True(t, ok)
	assert.Equal(t, room.CategoryDouble, r.Category())
	assert.Equal(t, money.Dinars(200), r.BasePrice())

	_, ok = c.Find("ch-99")
	assert.False(t, ok)

	seen := map[room.ID]bool{}
	for _, r := range c.All() {
		assert.False(t, seen[r.ID()])
		seen[r.ID()] = true
		assert.True(t, r.Category().IsValid())
	}
}

func TestNewRoom(t *testing.T) {
	_, err := room.NewRoom("ch-1", "1", room.CategoryTwin, 0, money.Dinars(100), nil, "")
	require.ErrorIs(t, err, room.ErrInvalidCapacity)

	_, err = room.NewRoom("CH 1", "1", room.CategoryTwin, 2, money.Dinars(100), nil, "")
	require.ErrorIs(t, err, room.ErrInvalidID)

	_, err = room.NewRoom("ch-1", "1", room.Category("SINGLE"), 2, money.Dinars(100), nil, "")
	require.ErrorIs(t, err, room.ErrInvalidCategory)

	_, err = room.NewRoom("ch-1", "1", room.CategoryTwin, 2, money.New(0), nil, "")
	require.ErrorIs(t, err, room.ErrInvalidBasePrice)

	a, err := room.NewRoom("ch-1", "1", room.CategoryTwin, 2, money.Dinars(100), []string{"wifi"}, "")
	require.NoError(t, err)
	a.Amenities()[0] = "changed"
	assert.Equal(t, []string{"wifi"}, a.Amenities())

	_, err = room.NewCatalog(a, a)
	require.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	c, err := room.ParseCategory("double+crib")
	require.NoError(t, err)
	assert.Equal(t, room.CategoryDoubleCrib, c)
}
