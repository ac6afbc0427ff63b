package services

import (
	"context"
	"errors"
	"time"

	"skillforge_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// SwapStore persists swap requests
type SwapStore interface {
	Put(ctx context.Context, swap *models.Swap) error
	Get(ctx context.Context, id string) (*models.Swap, error)
	ListByUser(ctx context.Context, userID string) ([]models.Swap, error)
}

// SwapService handles the one-shot request/cancel/endorse swap lifecycle
type SwapService struct {
	Swaps SwapStore
	Users UserStore
}

// Request creates a new pending swap. The responder is taken as given: the
// record is created even when the responder id is unknown or equals the
// requester, matching the permissive behavior of the frontend contract.
func (s *SwapService) Request(ctx context.Context, requesterID, responderID, skill string, hours int) (*models.Swap, error) {
	if responderID == "" || skill == "" {
		return nil, ValidationError("Responder and skill are required.")
	}
	if hours <= 0 {
		hours = 1
	}

	swap := &models.Swap{
		ID:          uuid.New().String(),
		RequesterID: requesterID,
		ResponderID: responderID,
		Skill:       skill,
		Status:      models.SwapStatusPending,
		Hours:       hours,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	if err := s.Swaps.Put(ctx, swap); err != nil {
		return nil, err
	}
	return swap, nil
}

// List returns every swap in which the user is requester or responder, with
// both participants populated
func (s *SwapService) List(ctx context.Context, userID string) ([]models.Swap, error) {
	swaps, err := s.Swaps.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range swaps {
		if requester, err := s.Users.Get(ctx, swaps[i].RequesterID); err == nil {
			summary := requester.Summary()
			swaps[i].Requester = &summary
		}
		if responder, err := s.Users.Get(ctx, swaps[i].ResponderID); err == nil {
			summary := responder.Summary()
			swaps[i].Responder = &summary
		}
	}
	return swaps, nil
}

// SetStatus updates the swap status. There is deliberately no ownership or
// prior-status check here: the stored behavior of the frontend contract is
// preserved as-is.
func (s *SwapService) SetStatus(ctx context.Context, swapID, status string) (*models.Swap, error) {
	switch status {
	case models.SwapStatusPending, models.SwapStatusAccepted, models.SwapStatusCompleted, models.SwapStatusCancelled:
	default:
		return nil, ValidationError("Invalid status")
	}

	swap, err := s.Swaps.Get(ctx, swapID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, NotFoundError("Swap not found")
		}
		return nil, err
	}

	swap.Status = status
	if err := s.Swaps.Put(ctx, swap); err != nil {
		return nil, err
	}
	return swap, nil
}

// Endorse attaches a rating and comment to a completed swap. A later
// endorsement overwrites an earlier one.
func (s *SwapService) Endorse(ctx context.Context, swapID, actingUserID, comment string, rating int) (*models.Swap, error) {
	if rating < 1 || rating > 5 {
		return nil, ValidationError("Rating must be between 1 and 5")
	}

	swap, err := s.Swaps.Get(ctx, swapID)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, NotFoundError("Swap not found")
		}
		return nil, err
	}
	if swap.Status != models.SwapStatusCompleted {
		return nil, InvalidStateError("Swap not completed yet")
	}

	swap.Endorsement = &models.Endorsement{
		Comment:    comment,
		Rating:     rating,
		EndorsedBy: actingUserID,
		Date:       time.Now().Format(time.RFC3339),
	}
	if err := s.Swaps.Put(ctx, swap); err != nil {
		return nil, err
	}
	return swap, nil
}

// DynamoSwapStore is the DynamoDB-backed SwapStore
type DynamoSwapStore struct {
	Dynamo *DynamoService
}

func (st *DynamoSwapStore) Put(ctx context.Context, swap *models.Swap) error {
	return st.Dynamo.PutItem(ctx, models.SwapsTable, swap)
}

func (st *DynamoSwapStore) Get(ctx context.Context, id string) (*models.Swap, error) {
	var swap models.Swap
	if err := st.Dynamo.GetByID(ctx, models.SwapsTable, id, &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// ListByUser merges the requester and responder GSI queries, deduplicating
// self-swaps that would otherwise appear twice
func (st *DynamoSwapStore) ListByUser(ctx context.Context, userID string) ([]models.Swap, error) {
	var asRequester, asResponder []models.Swap

	err := st.Dynamo.QueryItemsWithIndex(ctx, models.SwapsTable, models.SwapRequesterIndex,
		"requesterId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		&asRequester,
	)
	if err != nil {
		return nil, err
	}

	err = st.Dynamo.QueryItemsWithIndex(ctx, models.SwapsTable, models.SwapResponderIndex,
		"responderId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		&asResponder,
	)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(asRequester))
	swaps := asRequester
	for _, swap := range swaps {
		seen[swap.ID] = struct{}{}
	}
	for _, swap := range asResponder {
		if _, dup := seen[swap.ID]; !dup {
			swaps = append(swaps, swap)
		}
	}
	return swaps, nil
}
