package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentionList_UnknownLabelRejected(t *testing.T) {
	svc := NewMentionService(newFakeMentionRepo())

	_, err := svc.List(context.Background(), 1, "angry", 10, 0)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestMentionGet_ScopedToBusiness(t *testing.T) {
	repo := newFakeMentionRepo()
	ids := seedMentions(repo, 1, 1)

	svc := NewMentionService(repo)

	m, err := svc.Get(context.Background(), 1, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], m.ID)

	_, err = svc.Get(context.Background(), 2, ids[0])
	assert.True(t, errors.Is(err, ErrAccessDenied))

	_, err = svc.Get(context.Background(), 1, 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}
