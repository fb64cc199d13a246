package bookings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

var testSchema = []string{
	`CREATE TABLE IF NOT EXISTS guests (
		id TEXT PRIMARY KEY,
		guest_number INTEGER NOT NULL UNIQUE,
		balance INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id TEXT PRIMARY KEY,
		room_number INTEGER NOT NULL UNIQUE,
		type TEXT NOT NULL,
		price_per_night INTEGER NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		guest_id TEXT NOT NULL,
		room_id TEXT NOT NULL,
		check_in DATETIME NOT NULL,
		check_out DATETIME NOT NULL,
		total_price INTEGER NOT NULL,
		guest_balance_at_booking INTEGER NOT NULL,
		room_type_at_booking TEXT NOT NULL,
		room_price_at_booking INTEGER NOT NULL,
		created_at DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id TEXT PRIMARY KEY,
		event_type TEXT NOT NULL,
		aggregate_type TEXT NOT NULL,
		aggregate_id TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME,
		published_at DATETIME,
		attempt_count INTEGER NOT NULL DEFAULT 0,
		last_error TEXT
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:bookings_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedGuest(t *testing.T, db *gorm.DB, guestNumber int, balance int64) *models.Guest {
	t.Helper()
	guest := &models.Guest{ID: uuid.New(), GuestNumber: guestNumber, Balance: balance}
	require.NoError(t, db.Create(guest).Error)
	return guest
}

func seedRoom(t *testing.T, db *gorm.DB, roomNumber int, roomType enums.RoomType, price int64) *models.Room {
	t.Helper()
	room := &models.Room{ID: uuid.New(), RoomNumber: roomNumber, Type: roomType, PricePerNight: price}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedBooking(t *testing.T, db *gorm.DB, guest *models.Guest, room *models.Room, checkIn, checkOut string) *models.Booking {
	t.Helper()
	stay, err := ParseStayRange(checkIn, checkOut)
	require.NoError(t, err)
	booking := &models.Booking{
		ID:                    uuid.New(),
		GuestID:               guest.ID,
		RoomID:                room.ID,
		CheckIn:               stay.CheckIn,
		CheckOut:              stay.CheckOut,
		TotalPrice:            StayPrice(room.PricePerNight, stay),
		GuestBalanceAtBooking: guest.Balance,
		RoomTypeAtBooking:     room.Type,
		RoomPriceAtBooking:    room.PricePerNight,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func mustStay(t *testing.T, checkIn, checkOut string) StayRange {
	t.Helper()
	stay, err := ParseStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestFindConflictsDetectsOverlaps(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	guest := seedGuest(t, db, 1, 10000)
	room := seedRoom(t, db, 101, enums.RoomTypeStandard, 100)
	seedBooking(t, db, guest, room, "2024-10-06", "2024-10-09")

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"identical", "2024-10-06", "2024-10-09", 1},
		{"contained", "2024-10-07", "2024-10-08", 1},
		{"spanning", "2024-10-01", "2024-10-20", 1},
		{"tail overlap", "2024-10-08", "2024-10-12", 1},
		{"back to back after", "2024-10-09", "2024-10-12", 0},
		{"back to back before", "2024-10-03", "2024-10-06", 0},
		{"disjoint", "2024-11-01", "2024-11-04", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conflicts, err := repo.FindConflicts(ctx, room.ID, mustStay(t, tc.checkIn, tc.checkOut))
			require.NoError(t, err)
			assert.Len(t, conflicts, tc.want)
		})
	}
}

func TestFindConflictsScopedToRoomAndOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	guest := seedGuest(t, db, 1, 10000)
	room := seedRoom(t, db, 101, enums.RoomTypeStandard, 100)
	other := seedRoom(t, db, 102, enums.RoomTypeSuite, 200)
	later := seedBooking(t, db, guest, room, "2024-10-10", "2024-10-12")
	earlier := seedBooking(t, db, guest, room, "2024-10-06", "2024-10-08")
	seedBooking(t, db, guest, other, "2024-10-06", "2024-10-12")

	conflicts, err := repo.FindConflicts(ctx, room.ID, mustStay(t, "2024-10-01", "2024-10-20"))
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	assert.Equal(t, earlier.ID, conflicts[0].ID, "conflicts should be ordered by check_in")
	assert.Equal(t, later.ID, conflicts[1].ID)
}

func TestFindGuestAndRoomByNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedGuest(t, db, 7, 500)
	seedRoom(t, db, 42, enums.RoomTypeJunior, 150)

	guest, err := repo.FindGuestByNumber(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(500), guest.Balance)

	room, err := repo.FindRoomByNumber(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, enums.RoomTypeJunior, room.Type)

	_, err = repo.FindGuestByNumber(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateGuestBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	guest := seedGuest(t, db, 1, 1000)
	require.NoError(t, repo.UpdateGuestBalance(ctx, guest.ID, 700))

	reloaded, err := repo.FindGuestByNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(700), reloaded.Balance)
}
