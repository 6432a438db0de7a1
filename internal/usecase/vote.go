package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// VoteKind selects between the up-vote and down-vote collections.
type VoteKind string

const (
	VoteKindUp   VoteKind = "upVote"
	VoteKindDown VoteKind = "downVote"
)

// ErrAlreadyVoted signals an idempotent vote retry: the caller has already
// cast this kind of vote on this product.
var ErrAlreadyVoted = errors.New("already voted")

// VoteUsecase defines vote casting and listing for both vote kinds.
type VoteUsecase interface {
	// CastVote records a vote unless one already exists for the same
	// (email, product) pair, in which case it returns ErrAlreadyVoted. The
	// unique index on the pair makes the guard atomic under concurrent
	// calls.
	CastVote(ctx context.Context, kind VoteKind, vote *model.Vote) (*repository.InsertResult, error)

	ListVotesByEmail(ctx context.Context, kind VoteKind, email string) ([]*model.Vote, error)
	ListVotesByProduct(ctx context.Context, kind VoteKind, productID string) ([]*model.Vote, error)
}

type voteUsecase struct {
	upVotes   repository.VoteRepository
	downVotes repository.VoteRepository
}

func NewVoteUsecase(upVotes, downVotes repository.VoteRepository) VoteUsecase {
	return &voteUsecase{
		upVotes:   upVotes,
		downVotes: downVotes,
	}
}

func (u *voteUsecase) CastVote(
	ctx context.Context,
	kind VoteKind,
	vote *model.Vote,
) (*repository.InsertResult, error) {
	repo, err := u.repoFor(kind)
	if err != nil {
		return nil, err
	}

	result, err := repo.CreateVote(ctx, vote)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyVoted
		}

		return nil, err
	}

	return result, nil
}

func (u *voteUsecase) ListVotesByEmail(
	ctx context.Context,
	kind VoteKind,
	email string,
) ([]*model.Vote, error) {
	repo, err := u.repoFor(kind)
	if err != nil {
		return nil, err
	}

	return repo.ListVotesByEmail(ctx, email)
}

func (u *voteUsecase) ListVotesByProduct(
	ctx context.Context,
	kind VoteKind,
	productID string,
) ([]*model.Vote, error) {
	repo, err := u.repoFor(kind)
	if err != nil {
		return nil, err
	}

	return repo.ListVotesByProduct(ctx, productID)
}

func (u *voteUsecase) repoFor(kind VoteKind) (repository.VoteRepository, error) {
	switch kind {
	case VoteKindUp:
		return u.upVotes, nil
	case VoteKindDown:
		return u.downVotes, nil
	default:
		return nil, fmt.Errorf("unknown vote kind %q", kind)
	}
}
