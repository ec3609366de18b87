package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/config"
	"lodge/helper"
	"lodge/infras/sqlite"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/internal/domains/room/service"
	"lodge/shared/failure"
)

func newRoomService(t *testing.T) service.Room {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "lodge_test.db")
	cfg.DB.SQLite.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.BusyTimeoutMS = 5000

	require.NoError(t, helper.Up(cfg))

	conn, err := sqlite.New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() { conn.Close() })

	return service.New(repository.New(conn))
}

func TestRoomService_Create(t *testing.T) {
	svc := newRoomService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreateRoomRequest{
		RoomNumber: "101",
		RoomType:   "deluxe",
		Rate:       350,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "available", res.Status)

	fetched, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.InDelta(t, 350.0, fetched.Rate, 0.001)
}

func TestRoomService_Create_DuplicateNumber(t *testing.T) {
	svc := newRoomService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateRoomRequest{RoomNumber: "101", RoomType: "deluxe", Rate: 350})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateRoomRequest{RoomNumber: "101", RoomType: "standard", Rate: 120})
	require.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.GetKind(err))
}

func TestRoomService_Create_Validation(t *testing.T) {
	svc := newRoomService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateRoomRequest
	}{
		{
			name: "missing number",
			req:  dto.CreateRoomRequest{RoomType: "deluxe", Rate: 100},
		},
		{
			name: "zero rate",
			req:  dto.CreateRoomRequest{RoomNumber: "201", RoomType: "deluxe", Rate: 0},
		},
		{
			name: "negative rate",
			req:  dto.CreateRoomRequest{RoomNumber: "202", RoomType: "deluxe", Rate: -10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, failure.KindValidation, failure.GetKind(err))
		})
	}
}
