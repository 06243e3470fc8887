package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/chessacademy-server/internal/mocks"
	"github.com/dtroode/chessacademy-server/internal/model"
	"github.com/dtroode/chessacademy-server/internal/testutil"
)

func echoLead(_ context.Context, l model.Lead) model.Lead { return l }

func TestLead_Create(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewLeadStore(t)
	store.On("Create", ctx, mock.Anything).Return(echoLead, nil).Once()

	svc := NewLead(store, testutil.MakeNoopLogger())

	lead, err := svc.Create(ctx, LeadInput{
		Name:    "  Jo <b>  ",
		Phone:   "9876543210",
		Email:   "Jo@Example.com",
		Type:    "demo_request",
		Level:   "Beginner",
		Message: "<script>hi</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jo b", lead.Name)
	assert.Equal(t, "9876543210", lead.Phone)
	assert.Equal(t, "jo@example.com", lead.Email)
	assert.Equal(t, "scripthi/script", lead.Message)
	assert.Equal(t, model.LeadTypeDemoRequest, lead.Type)
	assert.Equal(t, model.LeadLevelBeginner, lead.Level)
	assert.Equal(t, model.LeadStatusNew, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())

	id, err := uuid.Parse(lead.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestLead_Create_MinimalScenario(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewLeadStore(t)
	store.On("Create", ctx, mock.Anything).Return(echoLead, nil).Once()

	svc := NewLead(store, testutil.MakeNoopLogger())

	lead, err := svc.Create(ctx, LeadInput{Name: "Jo", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusNew, lead.Status)
	assert.Equal(t, model.LeadTypeDemoRequest, lead.Type)
	assert.Empty(t, lead.Email)
}

func TestLead_Create_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewLeadStore(t)
	store.On("Create", ctx, mock.Anything).Return(echoLead, nil)

	svc := NewLead(store, testutil.MakeNoopLogger())

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		lead, err := svc.Create(ctx, LeadInput{Name: "Jo", Phone: "9876543210"})
		require.NoError(t, err)
		seen[lead.ID] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestLead_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    LeadInput
		field string
	}{
		{name: "short name", in: LeadInput{Name: "J", Phone: "9876543210"}, field: "name"},
		{name: "long name", in: LeadInput{Name: strings.Repeat("a", 101), Phone: "9876543210"}, field: "name"},
		{name: "short phone", in: LeadInput{Name: "Jo", Phone: "12345"}, field: "phone"},
		{name: "letters in phone", in: LeadInput{Name: "Jo", Phone: "98765abc10"}, field: "phone"},
		{name: "bad email", in: LeadInput{Name: "Jo", Phone: "9876543210", Email: "not-an-email"}, field: "email"},
		{name: "email with display name", in: LeadInput{Name: "Jo", Phone: "9876543210", Email: "Jo <jo@example.com>"}, field: "email"},
		{name: "long message", in: LeadInput{Name: "Jo", Phone: "9876543210", Message: strings.Repeat("m", 1001)}, field: "message"},
		{name: "bad type", in: LeadInput{Name: "Jo", Phone: "9876543210", Type: "newsletter"}, field: "type"},
		{name: "bad level", in: LeadInput{Name: "Jo", Phone: "9876543210", Level: "Grandmaster"}, field: "level"},
		{name: "bad demo date", in: LeadInput{Name: "Jo", Phone: "9876543210", DemoDate: "31/12/2025"}, field: "demoDate"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := servermocks.NewLeadStore(t)
			svc := NewLead(store, testutil.MakeNoopLogger())

			_, err := svc.Create(context.Background(), tt.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestLead_Create_TruncatesLongMessage(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewLeadStore(t)
	store.On("Create", ctx, mock.Anything).Return(echoLead, nil).Once()

	svc := NewLead(store, testutil.MakeNoopLogger())

	lead, err := svc.Create(ctx, LeadInput{Name: "Jo", Phone: "+919876543210", Message: strings.Repeat("m", 800)})
	require.NoError(t, err)
	assert.Len(t, lead.Message, 500)
}

func TestLead_List(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewLeadStore(t)
	store.On("List", ctx).Return(nil, nil).Once()

	svc := NewLead(store, testutil.MakeNoopLogger())

	leads, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, leads)
	assert.Empty(t, leads)
}

func TestLead_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := servermocks.NewLeadStore(t)
	store.On("UpdateStatus", ctx, "lead-1", model.LeadStatusContacted, "mpandit", now.UTC()).
		Return(model.Lead{ID: "lead-1", Status: model.LeadStatusContacted, UpdatedBy: "mpandit"}, nil).Once()
	store.On("UpdateStatus", ctx, "missing", model.LeadStatusRejected, "mpandit", now.UTC()).
		Return(model.Lead{}, model.ErrNotFound).Once()

	svc := NewLead(store, testutil.MakeNoopLogger())
	svc.now = func() time.Time { return now }

	lead, err := svc.UpdateStatus(ctx, "lead-1", "contacted", "mpandit")
	require.NoError(t, err)
	assert.Equal(t, model.LeadStatusContacted, lead.Status)
	assert.Equal(t, "mpandit", lead.UpdatedBy)

	_, err = svc.UpdateStatus(ctx, "missing", "rejected", "mpandit")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.UpdateStatus(ctx, "lead-1", "archived", "mpandit")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Fields[0].Field)
}

func TestLead_Delete(t *testing.T) {
	ctx := context.Background()
	store := servermocks.NewLeadStore(t)
	store.On("Delete", ctx, "lead-1").Return(nil).Once()
	store.On("Delete", ctx, "missing").Return(model.ErrNotFound).Once()
	store.On("Delete", ctx, "kept").Return(model.ErrUnsupported).Once()

	svc := NewLead(store, testutil.MakeNoopLogger())

	require.NoError(t, svc.Delete(ctx, "lead-1", "mpandit"))
	require.ErrorIs(t, svc.Delete(ctx, "missing", "mpandit"), model.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "kept", "mpandit"), model.ErrUnsupported)
}
