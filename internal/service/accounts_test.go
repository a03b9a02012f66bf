package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/model"
	"itinera/internal/repository/memory"
)

func TestAccountService_Users(t *testing.T) {
	ctx := context.Background()
	svc := NewAccountService(memory.NewUserRepository(time.Now))

	rec, err := svc.CreateUser(ctx, model.User{Name: " Asha ", Email: "asha@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", rec.Name)
	assert.NotNil(t, rec.Preferences)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = svc.CreateUser(ctx, model.User{Name: "NoEmail"})
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestAccountService_Profile(t *testing.T) {
	svc := NewAccountService(memory.NewUserRepository(time.Now))

	p := svc.Profile(context.Background())
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "dark", p.Preferences["theme"])

	fields := map[string]any{"name": "Jane"}
	assert.Equal(t, fields, svc.UpdateProfile(context.Background(), fields))
	assert.Equal(t, map[string]any{}, svc.UpdateProfile(context.Background(), nil))
}
