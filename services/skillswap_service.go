package services

import (
	"context"
	"errors"
	"log"
	"time"

	"skillforge_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// OfferUpdate describes one guarded offer transition inside a pair update.
// ExpectMatchedWith empty means the offer must currently have no partner;
// NewMatchedWith empty clears the partner reference.
type OfferUpdate struct {
	ID                string
	ExpectStatus      string
	ExpectMatchedWith string
	NewStatus         string
	NewMatchedWith    string
}

// OfferStore persists skill swap offers
type OfferStore interface {
	Put(ctx context.Context, offer *models.SkillOffer) error
	Get(ctx context.Context, id string) (*models.SkillOffer, error)
	ListByStatus(ctx context.Context, status string) ([]models.SkillOffer, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	// Delete removes the offer only if it is owned by ownerID; otherwise
	// ErrConditionFailed.
	Delete(ctx context.Context, id, ownerID string) error
	// UpdatePair applies both transitions atomically: either both offers
	// change or, if any expectation no longer holds, neither does and
	// ErrConditionFailed is returned.
	UpdatePair(ctx context.Context, a, b OfferUpdate) error
}

// MatchNotifier pushes swap lifecycle events to connected users
type MatchNotifier interface {
	NotifySwapEvent(userID, event string, payload interface{})
}

// SkillSwapService implements the offer matching and lifecycle engine
type SkillSwapService struct {
	Offers   OfferStore
	Users    UserStore
	Notifier MatchNotifier
}

// CreateOffer posts a new open offer and returns it together with the
// complementary open offers already on the board.
func (s *SkillSwapService) CreateOffer(ctx context.Context, userID, offer, request string) (*models.SkillOffer, []models.SkillOffer, error) {
	if offer == "" || request == "" {
		return nil, nil, ValidationError("Offer and request are required.")
	}

	skillOffer := &models.SkillOffer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Offer:     offer,
		Request:   request,
		Status:    models.OfferStatusOpen,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := s.Offers.Put(ctx, skillOffer); err != nil {
		return nil, nil, err
	}

	matches, err := s.FindComplementary(ctx, skillOffer)
	if err != nil {
		return nil, nil, err
	}
	return skillOffer, matches, nil
}

// FindComplementary returns the open offers of other users whose offered and
// requested skills mirror the given offer. Matching is exact string equality.
func (s *SkillSwapService) FindComplementary(ctx context.Context, offer *models.SkillOffer) ([]models.SkillOffer, error) {
	open, err := s.Offers.ListByStatus(ctx, models.OfferStatusOpen)
	if err != nil {
		return nil, err
	}

	matches := []models.SkillOffer{}
	for _, o := range open {
		if o.ID == offer.ID || o.UserID == offer.UserID {
			continue
		}
		if o.Offer == offer.Request && o.Request == offer.Offer {
			matches = append(matches, o)
		}
	}
	s.populateOwners(ctx, matches)
	return matches, nil
}

// ListOpen returns all open offers with their owners populated
func (s *SkillSwapService) ListOpen(ctx context.Context) ([]models.SkillOffer, error) {
	offers, err := s.Offers.ListByStatus(ctx, models.OfferStatusOpen)
	if err != nil {
		return nil, err
	}
	s.populateOwners(ctx, offers)
	return offers, nil
}

// Propose links two open offers into a pending pair. Both offers move to
// pending in one atomic update; on any precondition failure neither changes.
func (s *SkillSwapService) Propose(ctx context.Context, myOfferID, targetID, userID string) (*models.SkillOffer, *models.SkillOffer, error) {
	if targetID == "" || targetID == myOfferID {
		return nil, nil, NotFoundError("Offer not found or already matched")
	}

	myOffer, err := s.Offers.Get(ctx, myOfferID)
	if err != nil {
		return nil, nil, notFoundOrErr(err, "Offer not found or already matched")
	}
	if myOffer.UserID != userID || myOffer.Status != models.OfferStatusOpen {
		return nil, nil, NotFoundError("Offer not found or already matched")
	}

	targetOffer, err := s.Offers.Get(ctx, targetID)
	if err != nil {
		return nil, nil, notFoundOrErr(err, "Offer not found or already matched")
	}
	if targetOffer.Status != models.OfferStatusOpen {
		return nil, nil, NotFoundError("Offer not found or already matched")
	}

	err = s.Offers.UpdatePair(ctx,
		OfferUpdate{
			ID:             myOffer.ID,
			ExpectStatus:   models.OfferStatusOpen,
			NewStatus:      models.OfferStatusPending,
			NewMatchedWith: targetOffer.ID,
		},
		OfferUpdate{
			ID:             targetOffer.ID,
			ExpectStatus:   models.OfferStatusOpen,
			NewStatus:      models.OfferStatusPending,
			NewMatchedWith: myOffer.ID,
		},
	)
	if err != nil {
		return nil, nil, notFoundOrErr(err, "Offer not found or already matched")
	}

	myOffer.Status = models.OfferStatusPending
	myOffer.MatchedWith = targetOffer.ID
	targetOffer.Status = models.OfferStatusPending
	targetOffer.MatchedWith = myOffer.ID

	s.notifyPair(myOffer, targetOffer, "swapProposed")
	log.Printf("Swap proposed: offer %s <-> offer %s", myOffer.ID, targetOffer.ID)
	return myOffer, targetOffer, nil
}

// Accept moves a pending pair to matched. Matched pairs are terminal.
func (s *SkillSwapService) Accept(ctx context.Context, myOfferID, userID string) (*models.SkillOffer, *models.SkillOffer, error) {
	myOffer, otherOffer, err := s.pendingPair(ctx, myOfferID, userID)
	if err != nil {
		return nil, nil, err
	}

	err = s.Offers.UpdatePair(ctx,
		OfferUpdate{
			ID:                myOffer.ID,
			ExpectStatus:      models.OfferStatusPending,
			ExpectMatchedWith: otherOffer.ID,
			NewStatus:         models.OfferStatusMatched,
			NewMatchedWith:    otherOffer.ID,
		},
		OfferUpdate{
			ID:                otherOffer.ID,
			ExpectStatus:      models.OfferStatusPending,
			ExpectMatchedWith: myOffer.ID,
			NewStatus:         models.OfferStatusMatched,
			NewMatchedWith:    myOffer.ID,
		},
	)
	if err != nil {
		return nil, nil, notFoundOrErr(err, "Matched offer not found")
	}

	myOffer.Status = models.OfferStatusMatched
	otherOffer.Status = models.OfferStatusMatched

	s.notifyPair(myOffer, otherOffer, "swapMatched")
	log.Printf("Swap accepted: offer %s <-> offer %s", myOffer.ID, otherOffer.ID)
	return myOffer, otherOffer, nil
}

// Decline returns a pending pair to open and clears the links on both sides
func (s *SkillSwapService) Decline(ctx context.Context, myOfferID, userID string) (*models.SkillOffer, *models.SkillOffer, error) {
	myOffer, otherOffer, err := s.pendingPair(ctx, myOfferID, userID)
	if err != nil {
		return nil, nil, err
	}

	err = s.Offers.UpdatePair(ctx,
		OfferUpdate{
			ID:                myOffer.ID,
			ExpectStatus:      models.OfferStatusPending,
			ExpectMatchedWith: otherOffer.ID,
			NewStatus:         models.OfferStatusOpen,
		},
		OfferUpdate{
			ID:                otherOffer.ID,
			ExpectStatus:      models.OfferStatusPending,
			ExpectMatchedWith: myOffer.ID,
			NewStatus:         models.OfferStatusOpen,
		},
	)
	if err != nil {
		return nil, nil, notFoundOrErr(err, "Matched offer not found")
	}

	myOffer.Status = models.OfferStatusOpen
	myOffer.MatchedWith = ""
	otherOffer.Status = models.OfferStatusOpen
	otherOffer.MatchedWith = ""

	s.notifyPair(myOffer, otherOffer, "swapDeclined")
	log.Printf("Swap declined: offer %s <-> offer %s", myOffer.ID, otherOffer.ID)
	return myOffer, otherOffer, nil
}

// DeleteOffer removes an offer owned by userID. The delete is unconditional
// beyond the ownership check; a paired partner offer is left untouched.
func (s *SkillSwapService) DeleteOffer(ctx context.Context, offerID, userID string) error {
	err := s.Offers.Delete(ctx, offerID, userID)
	if err != nil {
		return notFoundOrErr(err, "Skill swap not found or not authorized")
	}
	return nil
}

// pendingPair loads an owned pending offer and its pending partner
func (s *SkillSwapService) pendingPair(ctx context.Context, myOfferID, userID string) (*models.SkillOffer, *models.SkillOffer, error) {
	myOffer, err := s.Offers.Get(ctx, myOfferID)
	if err != nil {
		return nil, nil, notFoundOrErr(err, "Offer not found or not pending")
	}
	if myOffer.UserID != userID || myOffer.Status != models.OfferStatusPending || myOffer.MatchedWith == "" {
		return nil, nil, NotFoundError("Offer not found or not pending")
	}

	otherOffer, err := s.Offers.Get(ctx, myOffer.MatchedWith)
	if err != nil {
		return nil, nil, notFoundOrErr(err, "Matched offer not found")
	}
	if otherOffer.Status != models.OfferStatusPending || otherOffer.MatchedWith != myOffer.ID {
		return nil, nil, NotFoundError("Matched offer not found")
	}
	return myOffer, otherOffer, nil
}

func (s *SkillSwapService) populateOwners(ctx context.Context, offers []models.SkillOffer) {
	for i := range offers {
		user, err := s.Users.Get(ctx, offers[i].UserID)
		if err != nil {
			continue
		}
		summary := user.Summary()
		offers[i].User = &summary
	}
}

func (s *SkillSwapService) notifyPair(a, b *models.SkillOffer, event string) {
	if s.Notifier == nil {
		return
	}
	payload := map[string]interface{}{"myOffer": a, "otherOffer": b}
	s.Notifier.NotifySwapEvent(a.UserID, event, payload)
	s.Notifier.NotifySwapEvent(b.UserID, event, payload)
}

// notFoundOrErr converts storage misses and lost condition races into the
// caller-facing not-found error, passing anything else through untouched.
func notFoundOrErr(err error, message string) error {
	if errors.Is(err, ErrItemNotFound) || errors.Is(err, ErrConditionFailed) {
		return NotFoundError(message)
	}
	return err
}

// DynamoOfferStore is the DynamoDB-backed OfferStore
type DynamoOfferStore struct {
	Dynamo *DynamoService
}

func (st *DynamoOfferStore) Put(ctx context.Context, offer *models.SkillOffer) error {
	return st.Dynamo.PutItem(ctx, models.SkillSwapsTable, offer)
}

func (st *DynamoOfferStore) Get(ctx context.Context, id string) (*models.SkillOffer, error) {
	var offer models.SkillOffer
	if err := st.Dynamo.GetByID(ctx, models.SkillSwapsTable, id, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (st *DynamoOfferStore) ListByStatus(ctx context.Context, status string) ([]models.SkillOffer, error) {
	var offers []models.SkillOffer
	err := st.Dynamo.QueryItemsWithIndex(ctx, models.SkillSwapsTable, models.SkillSwapStatusIndex,
		"#s = :status",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
		map[string]string{"#s": "status"},
		&offers,
	)
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (st *DynamoOfferStore) CountByUser(ctx context.Context, userID string) (int, error) {
	var offers []models.SkillOffer
	err := st.Dynamo.QueryItemsWithIndex(ctx, models.SkillSwapsTable, models.SkillSwapUserIndex,
		"userId = :userId",
		map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		&offers,
	)
	if err != nil {
		return 0, err
	}
	return len(offers), nil
}

func (st *DynamoOfferStore) Delete(ctx context.Context, id, ownerID string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	return st.Dynamo.DeleteItem(ctx, models.SkillSwapsTable, key,
		"userId = :owner",
		map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	)
}

func (st *DynamoOfferStore) UpdatePair(ctx context.Context, a, b OfferUpdate) error {
	return st.Dynamo.TransactUpdateItems(ctx, []TransactUpdate{
		offerTransactUpdate(a),
		offerTransactUpdate(b),
	})
}

func offerTransactUpdate(u OfferUpdate) TransactUpdate {
	values := map[string]types.AttributeValue{
		":newStatus":      &types.AttributeValueMemberS{Value: u.NewStatus},
		":expectedStatus": &types.AttributeValueMemberS{Value: u.ExpectStatus},
	}

	updateExpr := "SET #s = :newStatus"
	if u.NewMatchedWith != "" {
		updateExpr = "SET #s = :newStatus, matchedWith = :newMatchedWith"
		values[":newMatchedWith"] = &types.AttributeValueMemberS{Value: u.NewMatchedWith}
	} else {
		updateExpr += " REMOVE matchedWith"
	}

	conditionExpr := "#s = :expectedStatus AND attribute_not_exists(matchedWith)"
	if u.ExpectMatchedWith != "" {
		conditionExpr = "#s = :expectedStatus AND matchedWith = :expectedMatchedWith"
		values[":expectedMatchedWith"] = &types.AttributeValueMemberS{Value: u.ExpectMatchedWith}
	}

	return TransactUpdate{
		TableName:                 models.SkillSwapsTable,
		Key:                       map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: u.ID}},
		UpdateExpression:          updateExpr,
		ConditionExpression:       conditionExpr,
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  map[string]string{"#s": "status"},
	}
}
