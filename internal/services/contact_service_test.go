package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories/memory"
	"github.com/sarathmw/portfolio-api/internal/services"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

func newContactService() services.ContactService {
	return services.NewContactService(memory.NewCollection(memory.NewestFirst))
}

func TestContactSubmit(t *testing.T) {
	svc := newContactService()

	msg, err := svc.Submit(context.Background(), models.ContactMessage{
		Name:    "John Smith",
		Email:   "john.smith@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, models.StatusUnread, msg.Status)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestContactSubmitMissingFields(t *testing.T) {
	svc := newContactService()

	for name, in := range map[string]models.ContactMessage{
		"no name":    {Email: "a@b.c", Message: "hi"},
		"no email":   {Name: "A", Message: "hi"},
		"no message": {Name: "A", Email: "a@b.c"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), in)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestContactListNewestFirst(t *testing.T) {
	svc := newContactService()
	ctx := context.Background()

	for _, text := range []string{"oldest", "middle", "newest"} {
		_, err := svc.Submit(ctx, models.ContactMessage{Name: "A", Email: "a@b.c", Message: text})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Message)
	assert.Equal(t, "middle", list[1].Message)
	assert.Equal(t, "oldest", list[2].Message)
}

func TestContactListEmpty(t *testing.T) {
	svc := newContactService()

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
