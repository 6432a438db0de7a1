package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

type fakeVoteUsecase struct {
	cast map[string]bool
}

func newFakeVoteUsecase() *fakeVoteUsecase {
	return &fakeVoteUsecase{cast: map[string]bool{}}
}

func (f *fakeVoteUsecase) CastVote(_ context.Context, kind usecase.VoteKind, vote *model.Vote) (*repository.InsertResult, error) {
	key := string(kind) + "/" + vote.Email + "/" + vote.ProductID
	if f.cast[key] {
		return nil, usecase.ErrAlreadyVoted
	}

	f.cast[key] = true

	return &repository.InsertResult{InsertedID: key}, nil
}

func (f *fakeVoteUsecase) ListVotesByEmail(_ context.Context, _ usecase.VoteKind, _ string) ([]*model.Vote, error) {
	return nil, nil
}

func (f *fakeVoteUsecase) ListVotesByProduct(_ context.Context, _ usecase.VoteKind, _ string) ([]*model.Vote, error) {
	return nil, nil
}

func TestCastVoteRepeatReturnsMarker(t *testing.T) {
	h := NewVoteHandler(newFakeVoteUsecase(), testLogger())
	cast := h.Cast(usecase.VoteKindUp)

	body := `{"email":"a@b.com","product_id":"p1"}`

	first := httptest.NewRequest(http.MethodPost, "/upVote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	cast(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp["insertedId"])

	second := httptest.NewRequest(http.MethodPost, "/upVote", strings.NewReader(body))
	rec = httptest.NewRecorder()
	cast(rec, second)
	require.Equal(t, http.StatusOK, rec.Code)

	resp = map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "already voted", resp["message"])
	assert.Nil(t, resp["insertedId"])
}
