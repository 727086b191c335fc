package service

import (
	"errors"

	"smartsave/internal/domain"
	"smartsave/internal/models"
	"smartsave/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SplitService validates and materializes bill splits: it derives each
// participant's share under the chosen strategy, checks that paid and owed
// sums reconcile against the bill total, and persists the result atomically.
type SplitService struct {
	splitRepo *repository.SplitRepository
	groupRepo *repository.GroupRepository
	userRepo  *repository.UserRepository
}

func NewSplitService(splitRepo *repository.SplitRepository, groupRepo *repository.GroupRepository, userRepo *repository.UserRepository) *SplitService {
	return &SplitService{splitRepo: splitRepo, groupRepo: groupRepo, userRepo: userRepo}
}

// ParticipantInput is one participant row in a create request. Absent
// amounts are defaulted: paid_amount to the bill total for the creator and
// zero for everyone else, share_amount to an equal share, split_value to 1.
type ParticipantInput struct {
	UserID      uint
	PaidAmount  *float64
	ShareAmount *float64
	SplitMethod string
	SplitValue  *float64
}

type CreateSplitInput struct {
	Name         string
	TotalAmount  float64
	GroupID      *uint
	Category     string
	Currency     string
	Status       string
	PhotoURL     string
	Notes        string
	IsRecurring  bool
	Participants []ParticipantInput
}

// ParticipantPatch updates a single existing participant row. Fields apply
// independently; the sum invariants are not re-checked on update.
type ParticipantPatch struct {
	UserID      uint
	PaidAmount  *float64
	ShareAmount *float64
	Status      *string
}

type UpdateSplitInput struct {
	Name         *string
	TotalAmount  *float64
	GroupID      *uint
	Category     *string
	Currency     *string
	Status       *string
	PhotoURL     *string
	Notes        *string
	IsRecurring  *bool
	Participants []ParticipantPatch
}

var tolerance = decimal.NewFromFloat(domain.AmountTolerance)

func withinTolerance(sum, want decimal.Decimal) bool {
	return sum.Sub(want).Abs().LessThanOrEqual(tolerance)
}

// CreateSplit validates the request and persists the bill split with one
// participant row per entry. Any failure leaves no rows behind.
func (s *SplitService) CreateSplit(actorID uint, in CreateSplitInput) (*models.BillSplit, error) {
	if in.Name == "" {
		return nil, domain.Validationf("bill name is required")
	}
	if in.TotalAmount <= 0 {
		return nil, domain.Validationf("total amount must be a positive number")
	}
	if len(in.Participants) == 0 {
		return nil, domain.Validationf("participants must be a non-empty list")
	}

	total := decimal.NewFromFloat(in.TotalAmount)
	equalShare := in.TotalAmount / float64(len(in.Participants))

	rows := make([]models.SplitParticipant, 0, len(in.Participants))
	paidSum := decimal.Zero
	shareSum := decimal.Zero
	pctSum := decimal.Zero
	hasPercentage := false

	for _, p := range in.Participants {
		if p.UserID == 0 {
			return nil, domain.Validationf("each participant must have a user_id")
		}

		method := p.SplitMethod
		if method == "" {
			method = domain.SplitMethodEqual
		}
		if !domain.IsValidSplitMethod(method) {
			return nil, domain.Validationf("invalid split method for user %d: %s", p.UserID, method)
		}

		paid := 0.0
		if p.PaidAmount != nil {
			if *p.PaidAmount < 0 {
				return nil, domain.Validationf("paid amount for user %d cannot be negative", p.UserID)
			}
			paid = *p.PaidAmount
		} else if p.UserID == actorID {
			// Creator fronted the bill unless told otherwise.
			paid = in.TotalAmount
		}

		share := equalShare
		if p.ShareAmount != nil {
			if *p.ShareAmount < 0 {
				return nil, domain.Validationf("share amount for user %d cannot be negative", p.UserID)
			}
			share = *p.ShareAmount
		}

		value := 1.0
		if p.SplitValue != nil {
			if *p.SplitValue < 0 {
				return nil, domain.Validationf("split value for user %d cannot be negative", p.UserID)
			}
			value = *p.SplitValue
		}

		if method == domain.SplitMethodPercentage {
			hasPercentage = true
			pctSum = pctSum.Add(decimal.NewFromFloat(value))
		}

		paidSum = paidSum.Add(decimal.NewFromFloat(paid))
		shareSum = shareSum.Add(decimal.NewFromFloat(share))

		rows = append(rows, models.SplitParticipant{
			UserID:      p.UserID,
			PaidAmount:  paid,
			ShareAmount: share,
			SplitMethod: method,
			SplitValue:  value,
			Status:      domain.ParticipantStatusPending,
		})
	}

	if hasPercentage && !withinTolerance(pctSum, decimal.NewFromInt(100)) {
		return nil, domain.Validationf("total percentage split values must sum to 100%%, got %s%%", pctSum.String())
	}
	if !withinTolerance(paidSum, total) {
		return nil, domain.Validationf("sum of amounts paid (%s) does not match total amount (%.2f)", paidSum.StringFixed(2), in.TotalAmount)
	}
	if !withinTolerance(shareSum, total) {
		return nil, domain.Validationf("sum of amounts owed (%s) does not match total amount (%.2f)", shareSum.StringFixed(2), in.TotalAmount)
	}

	for _, row := range rows {
		u, err := s.userRepo.GetByID(row.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.Validationf("user with ID %d does not exist", row.UserID)
			}
			return nil, err
		}
		if u.IsBanned {
			return nil, domain.Validationf("user with ID %d is banned", row.UserID)
		}
	}

	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(*in.GroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.Validationf("group with ID %d does not exist", *in.GroupID)
			}
			return nil, err
		}
		memberIDs, err := s.groupRepo.MemberIDs(*in.GroupID)
		if err != nil {
			return nil, err
		}
		members := make(map[uint]bool, len(memberIDs))
		for _, id := range memberIDs {
			members[id] = true
		}
		for _, row := range rows {
			if !members[row.UserID] {
				return nil, domain.Validationf("all participants must be members of the selected group")
			}
		}
	}

	status := in.Status
	if status == "" {
		status = domain.SplitStatusActive
	}
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	bs := &models.BillSplit{
		Name:        in.Name,
		TotalAmount: in.TotalAmount,
		CreatorID:   actorID,
		GroupID:     in.GroupID,
		Category:    in.Category,
		Currency:    currency,
		Status:      status,
		PhotoURL:    in.PhotoURL,
		Notes:       in.Notes,
		IsRecurring: in.IsRecurring,
	}
	if err := s.splitRepo.CreateWithParticipants(bs, rows); err != nil {
		return nil, err
	}
	return bs, nil
}

// UpdateSplit applies participant-level corrections and split field patches.
// Only an existing participant may call it. Patches do not re-validate the
// sum invariants: post-creation edits are corrections, not re-allocations.
func (s *SplitService) UpdateSplit(actorID, billSplitID uint, in UpdateSplitInput) (*models.BillSplit, error) {
	bs, err := s.splitRepo.GetByID(billSplitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if _, err := s.splitRepo.GetParticipant(billSplitID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}

	var patched []*models.SplitParticipant
	for _, patch := range in.Participants {
		if patch.UserID == 0 {
			return nil, domain.Validationf("each participant must have a user_id")
		}
		p, err := s.splitRepo.GetParticipant(billSplitID, patch.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.Validationf("participant with user_id %d not found in this bill split", patch.UserID)
			}
			return nil, err
		}
		if patch.PaidAmount != nil {
			p.PaidAmount = *patch.PaidAmount
		}
		if patch.ShareAmount != nil {
			p.ShareAmount = *patch.ShareAmount
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		patched = append(patched, p)
	}

	if in.Name != nil {
		bs.Name = *in.Name
	}
	if in.TotalAmount != nil {
		bs.TotalAmount = *in.TotalAmount
	}
	if in.GroupID != nil {
		bs.GroupID = in.GroupID
	}
	if in.Category != nil {
		bs.Category = *in.Category
	}
	if in.Currency != nil {
		bs.Currency = *in.Currency
	}
	if in.Status != nil {
		bs.Status = *in.Status
	}
	if in.PhotoURL != nil {
		bs.PhotoURL = *in.PhotoURL
	}
	if in.Notes != nil {
		bs.Notes = *in.Notes
	}
	if in.IsRecurring != nil {
		bs.IsRecurring = *in.IsRecurring
	}

	if err := s.splitRepo.SaveUpdate(bs, patched); err != nil {
		return nil, err
	}
	return s.splitRepo.GetByID(billSplitID)
}

// DeleteSplit removes the bill split and everything referencing it.
// Only the original creator may delete.
func (s *SplitService) DeleteSplit(actorID, billSplitID uint) error {
	bs, err := s.splitRepo.GetByID(billSplitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if bs.CreatorID != actorID {
		return domain.ErrForbidden
	}
	return s.splitRepo.DeleteCascade(bs)
}

func (s *SplitService) GetSplit(billSplitID uint) (*models.BillSplit, error) {
	bs, err := s.splitRepo.GetByID(billSplitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return bs, nil
}

// ListSplits returns every bill split the user participates in.
func (s *SplitService) ListSplits(userID uint) ([]models.BillSplit, error) {
	return s.splitRepo.ListByUser(userID)
}
