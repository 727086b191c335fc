package service

import (
	"errors"

	"smartsave/internal/domain"
	"smartsave/internal/models"
	"smartsave/internal/repository"

	"gorm.io/gorm"
)

// SettlementService records point-in-time payments between users. A
// settlement is an audit entry: it never mutates participant shares, even
// when linked to a bill split.
type SettlementService struct {
	settlementRepo *repository.SettlementRepository
	splitRepo      *repository.SplitRepository
	userRepo       *repository.UserRepository
}

func NewSettlementService(settlementRepo *repository.SettlementRepository, splitRepo *repository.SplitRepository, userRepo *repository.UserRepository) *SettlementService {
	return &SettlementService{settlementRepo: settlementRepo, splitRepo: splitRepo, userRepo: userRepo}
}

type RecordSettlementInput struct {
	PayerID     uint
	PayeeID     uint
	Amount      float64
	BillSplitID *uint
	Method      string
	Notes       string
}

// RecordSettlement inserts a settlement row. The actor must be the payer:
// users record payments they make, not payments made on their behalf.
func (s *SettlementService) RecordSettlement(actorID uint, in RecordSettlementInput) (*models.Settlement, error) {
	if in.PayerID == 0 || in.PayeeID == 0 {
		return nil, domain.Validationf("payer and payee user IDs are required")
	}
	if in.Amount <= 0 {
		return nil, domain.Validationf("amount must be a positive number")
	}
	if in.PayerID != actorID {
		return nil, domain.ErrForbidden
	}
	for _, id := range []uint{in.PayerID, in.PayeeID} {
		ok, err := s.userRepo.Exists(id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.Validationf("user with ID %d does not exist", id)
		}
	}
	if in.BillSplitID != nil {
		if _, err := s.splitRepo.GetByID(*in.BillSplitID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.Validationf("bill split with ID %d does not exist", *in.BillSplitID)
			}
			return nil, err
		}
	}

	settlement := &models.Settlement{
		FromUserID:  in.PayerID,
		ToUserID:    in.PayeeID,
		Amount:      in.Amount,
		BillSplitID: in.BillSplitID,
		Method:      in.Method,
		Notes:       in.Notes,
	}
	if err := s.settlementRepo.Create(settlement); err != nil {
		return nil, err
	}
	return settlement, nil
}

// ListSettlements returns every settlement where the user is payer or payee.
func (s *SettlementService) ListSettlements(userID uint) ([]models.Settlement, error) {
	return s.settlementRepo.ListByUser(userID)
}
