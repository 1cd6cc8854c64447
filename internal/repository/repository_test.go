package repository

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
)

type call struct {
	sql  string
	args []any
}

type fakeExecutor struct {
	rows  []Row
	err   error
	calls []call
}

func (f *fakeExecutor) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	f.calls = append(f.calls, call{sql: sql, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeExecutor) last(t *testing.T) call {
	t.Helper()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func userRow(id int64, email string) Row {
	return Row{"id": int32(id), "name": "Armand Hilll", "email": email, "password": "$2a$10$hash"}
}

func propertyRow(id int64, rating any) Row {
	return Row{
		"id":                  int32(id),
		"owner_id":            int32(3),
		"title":               "Speed lamp",
		"description":         "description",
		"thumbnail_photo_url": "https://example.com/thumb.jpg",
		"cover_photo_url":     "https://example.com/cover.jpg",
		"cost_per_night":      int32(93061),
		"parking_spaces":      int32(6),
		"number_of_bathrooms": int32(4),
		"number_of_bedrooms":  int32(8),
		"country":             "Canada",
		"street":              "536 Namsub Highway",
		"city":                "Vancouver",
		"province":            "British Columbia",
		"post_code":           "28142",
		"active":              true,
		"average_rating":      rating,
	}
}

func TestGetUserByEmail(t *testing.T) {
	exec := &fakeExecutor{rows: []Row{userRow(1, "tristanjacobs@gmail.com")}}
	repo := NewUserRepository(exec)

	user, err := repo.GetUserByEmail(context.Background(), "tristanjacobs@gmail.com")
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "tristanjacobs@gmail.com", user.Email)
	assert.Equal(t, "$2a$10$hash", user.Password)

	got := exec.last(t)
	assert.Contains(t, got.sql, "WHERE LOWER(email) = LOWER($1);")
	assert.NotContains(t, got.sql, "LIKE")
	assert.Equal(t, []any{"tristanjacobs@gmail.com"}, got.args)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	repo := NewUserRepository(&fakeExecutor{})

	user, err := repo.GetUserByEmail(context.Background(), "nobody@nowhere.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, sqlerr.ErrNotFound)
	assert.False(t, sqlerr.IsStorageFailure(err))
}

func TestGetUserByID(t *testing.T) {
	exec := &fakeExecutor{rows: []Row{userRow(42, "a@b.c")}}
	repo := NewUserRepository(exec)

	user, err := repo.GetUserByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, []any{int64(42)}, exec.last(t).args)
}

func TestGetUserByIDNotFound(t *testing.T) {
	repo := NewUserRepository(&fakeExecutor{})

	_, err := repo.GetUserByID(context.Background(), 999999)
	assert.True(t, sqlerr.IsNotFound(err))
}

func TestAddUser(t *testing.T) {
	exec := &fakeExecutor{rows: []Row{userRow(7, "new@user.com")}}
	repo := NewUserRepository(exec)

	user, err := repo.AddUser(context.Background(), model.NewUser{
		Name:     "New User",
		Email:    "new@user.com",
		Password: "$2a$10$hash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	got := exec.last(t)
	assert.Contains(t, got.sql, "INSERT INTO users (name, email, password)")
	assert.Contains(t, got.sql, "RETURNING *")
	assert.Equal(t, []any{"New User", "new@user.com", "$2a$10$hash"}, got.args)
}

func TestAddUserWithoutReturnedRow(t *testing.T) {
	repo := NewUserRepository(&fakeExecutor{})

	_, err := repo.AddUser(context.Background(), model.NewUser{Name: "x"})
	assert.True(t, sqlerr.IsStorageFailure(err))
	assert.False(t, sqlerr.IsNotFound(err))
}

func TestExecutorFailureIsStorageFailure(t *testing.T) {
	boom := errors.New("connection refused")
	repos := New(&fakeExecutor{err: boom})
	ctx := context.Background()

	_, err := repos.Users.GetUserByEmail(ctx, "a@b.c")
	assertStorageFailure(t, err, boom, "get user by email")

	_, err = repos.Users.GetUserByID(ctx, 1)
	assertStorageFailure(t, err, boom, "get user by id")

	_, err = repos.Users.AddUser(ctx, model.NewUser{})
	assertStorageFailure(t, err, boom, "add user")

	_, err = repos.Reservations.ListReservationsForGuest(ctx, 1, 10)
	assertStorageFailure(t, err, boom, "list reservations for guest")

	_, err = repos.Properties.ListProperties(ctx, model.PropertyFilter{}, 10)
	assertStorageFailure(t, err, boom, "list properties")

	_, err = repos.Properties.AddProperty(ctx, model.NewProperty{})
	assertStorageFailure(t, err, boom, "add property")
}

func assertStorageFailure(t *testing.T, err, cause error, op string) {
	t.Helper()

	var storageErr *sqlerr.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, op, storageErr.Op)
	assert.ErrorIs(t, err, cause)
	assert.False(t, sqlerr.IsNotFound(err))
}

func TestListReservationsForGuest(t *testing.T) {
	start := time.Date(2018, 9, 11, 0, 0, 0, 0, time.UTC)
	exec := &fakeExecutor{rows: []Row{{
		"id":                  int32(2),
		"guest_id":            int32(1),
		"property_id":         int32(2),
		"start_date":          start,
		"end_date":            start.AddDate(0, 0, 7),
		"owner_id":            int32(4),
		"title":               "Blank corner",
		"description":         "Quiet street",
		"thumbnail_photo_url": "t",
		"cover_photo_url":     "c",
		"cost_per_night":      int32(85234),
		"parking_spaces":      int32(6),
		"number_of_bathrooms": int32(6),
		"number_of_bedrooms":  int32(7),
		"active":              true,
		"country":             "Canada",
		"street":              "651 Nami Road",
		"city":                "Bohbatev",
		"province":            "Alberta",
		"post_code":           "83680",
		"average_rating":      "3.80",
	}}}
	repo := NewReservationRepository(exec)

	reservations, err := repo.ListReservationsForGuest(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, reservations, 1)

	r := reservations[0]
	assert.Equal(t, int64(2), r.ID)
	assert.Equal(t, int64(1), r.GuestID)
	assert.Equal(t, start, r.StartDate)
	assert.Equal(t, int64(2), r.PropertyID)
	assert.Equal(t, int64(4), r.OwnerID)
	assert.Equal(t, "Blank corner", r.Title)
	assert.Equal(t, "Quiet street", r.Description)
	assert.Equal(t, int64(85234), r.CostPerNight)
	assert.True(t, r.Active)
	assert.Equal(t, "651 Nami Road", r.Street)
	assert.Equal(t, "Alberta", r.Province)
	assert.Equal(t, "83680", r.PostCode)
	assert.True(t, decimal.RequireFromString("3.8").Equal(r.AverageRating))

	got := exec.last(t)
	assert.Equal(t, []any{int64(1), 10}, got.args)
	for _, column := range []string{
		"properties.owner_id", "properties.description", "properties.active",
		"properties.street", "properties.province", "properties.post_code",
	} {
		assert.Contains(t, got.sql, column)
	}
	assert.NotContains(t, got.sql, "SELECT properties.*")
	assert.Contains(t, got.sql, "WHERE reservations.guest_id = $1")
	assert.Contains(t, got.sql, "GROUP BY properties.id, reservations.id")
	assert.Contains(t, got.sql, "ORDER BY reservations.start_date LIMIT $2;")
}

func TestListReservationsForGuestEmpty(t *testing.T) {
	repo := NewReservationRepository(&fakeExecutor{})

	reservations, err := repo.ListReservationsForGuest(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.NotNil(t, reservations)
	assert.Empty(t, reservations)
}

func TestListPropertiesDecodesRows(t *testing.T) {
	numeric := pgtype.Numeric{Int: big.NewInt(475), Exp: -2, Valid: true}
	exec := &fakeExecutor{rows: []Row{propertyRow(1, numeric), propertyRow(2, nil)}}
	repo := NewPropertyRepository(exec)

	properties, err := repo.ListProperties(context.Background(), model.PropertyFilter{}, 2)
	require.NoError(t, err)
	require.Len(t, properties, 2)

	p := properties[0]
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(3), p.OwnerID)
	assert.Equal(t, int64(93061), p.CostPerNight)
	assert.Equal(t, 6, p.ParkingSpaces)
	assert.True(t, p.Active)
	require.NotNil(t, p.AverageRating)
	assert.True(t, decimal.RequireFromString("4.75").Equal(*p.AverageRating))

	assert.Nil(t, properties[1].AverageRating)
}

func TestListPropertiesEmpty(t *testing.T) {
	repo := NewPropertyRepository(&fakeExecutor{})

	properties, err := repo.ListProperties(context.Background(), model.PropertyFilter{City: ptr("Atlantis")}, 10)
	require.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}

func TestAddProperty(t *testing.T) {
	row := propertyRow(1001, nil)
	delete(row, "average_rating")
	exec := &fakeExecutor{rows: []Row{row}}
	repo := NewPropertyRepository(exec)

	input := model.NewProperty{
		OwnerID:           3,
		Title:             "Speed lamp",
		Description:       "description",
		ThumbnailPhotoURL: "https://example.com/thumb.jpg",
		CoverPhotoURL:     "https://example.com/cover.jpg",
		CostPerNight:      93061,
		ParkingSpaces:     6,
		NumberOfBathrooms: 4,
		NumberOfBedrooms:  8,
		Country:           "Canada",
		Street:            "536 Namsub Highway",
		City:              "Vancouver",
		Province:          "British Columbia",
		PostCode:          "28142",
	}

	property, err := repo.AddProperty(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), property.ID)
	assert.True(t, property.Active)
	assert.Nil(t, property.AverageRating)

	got := exec.last(t)
	assert.Contains(t, got.sql, "RETURNING *")
	assert.Equal(t, []any{
		"Speed lamp",
		"description",
		int64(3),
		"https://example.com/cover.jpg",
		"https://example.com/thumb.jpg",
		int64(93061),
		6,
		4,
		8,
		true,
		"British Columbia",
		"Vancouver",
		"Canada",
		"536 Namsub Highway",
		"28142",
	}, got.args)
}

func TestToDecimalHook(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"numeric", pgtype.Numeric{Int: big.NewInt(12345), Exp: -3, Valid: true}, "12.345"},
		{"null numeric", pgtype.Numeric{}, "0"},
		{"float", 4.5, "4.5"},
		{"int64", int64(4), "4"},
		{"string", "3.14", "3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := toDecimalHook(nil, decimalType, tt.in)
			require.NoError(t, err)

			d, ok := out.(decimal.Decimal)
			require.True(t, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(d), "got %s", d)
		})
	}

	_, err := toDecimalHook(nil, decimalType, pgtype.Numeric{NaN: true, Valid: true, Int: big.NewInt(0)})
	assert.Error(t, err)
}
