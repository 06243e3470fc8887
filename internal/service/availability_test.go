package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/chessacademy-server/internal/mocks"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/testutil"
)

func TestAvailability_Save_StoresOnlySetSlots(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewAvailabilityStore(t)
	store.On("Replace", ctx, "mpandit", model.Schedule{
		"Monday": {"10:00": model.SlotAvailable},
	}).Return(nil).Once()

	svc := NewAvailability(store, testutil.MakeNoopLogger())

	err := svc.Save(ctx, "mpandit", model.Schedule{
		"Monday":  {"10:00": model.SlotAvailable, "11:00": model.SlotUnset},
		"Tuesday": {"09:00": model.SlotUnset},
	})
	require.NoError(t, err)
}

func TestAvailability_Save_Validation(t *testing.T) {
	store := servermocks.NewAvailabilityStore(t)
	svc := NewAvailability(store, testutil.MakeNoopLogger())

	err := svc.Save(context.Background(), "mpandit", model.Schedule{
		"Monday": {"10:00": model.SlotState("maybe")},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "availability.Monday.10:00", verr.Fields[0].Field)

	err = svc.Save(context.Background(), "mpandit", model.Schedule{
		"": {"10:00": model.SlotAvailable},
	})
	require.ErrorAs(t, err, &verr)
}

func TestAvailability_Save_StoreError(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewAvailabilityStore(t)
	store.On("Replace", ctx, "mpandit", model.Schedule{}).Return(assert.AnError).Once()

	svc := NewAvailability(store, testutil.MakeNoopLogger())

	require.ErrorIs(t, svc.Save(ctx, "mpandit", model.Schedule{}), assert.AnError)
}

func TestAvailability_Get(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewAvailabilityStore(t)
	store.On("Get", ctx, "nobody").Return(nil, nil).Once()
	store.On("Get", ctx, "mpandit").Return(model.Schedule{"Monday": {"10:00": model.SlotUnavailable}}, nil).Once()

	svc := NewAvailability(store, testutil.MakeNoopLogger())

	got, err := svc.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = svc.Get(ctx, "mpandit")
	require.NoError(t, err)
	assert.Equal(t, model.SlotUnavailable, got["Monday"]["10:00"])
}
