package service

import (
	"errors"
	"testing"

	"smartsave/internal/domain"
	"smartsave/internal/models"
)

func TestRecordSettlement(t *testing.T) {
	db := newTestDB(t)
	svc := newSettlementService(db)
	splitSvc := newSplitService(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	bs, err := splitSvc.CreateSplit(alice.ID, CreateSplitInput{
		Name:        "Dinner",
		TotalAmount: 100,
		Participants: []ParticipantInput{
			{UserID: alice.ID},
			{UserID: bob.ID},
		},
	})
	if err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	t.Run("actor must be payer", func(t *testing.T) {
		_, err := svc.RecordSettlement(alice.ID, RecordSettlementInput{
			PayerID: bob.ID,
			PayeeID: alice.ID,
			Amount:  50,
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if n := countRows(t, db, &models.Settlement{}, "1 = 1"); n != 0 {
			t.Errorf("expected 0 settlements, got %d", n)
		}
	})

	t.Run("missing ids", func(t *testing.T) {
		_, err := svc.RecordSettlement(bob.ID, RecordSettlementInput{PayerID: bob.ID, Amount: 50})
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		for _, amount := range []float64{0, -10} {
			_, err := svc.RecordSettlement(bob.ID, RecordSettlementInput{
				PayerID: bob.ID,
				PayeeID: alice.ID,
				Amount:  amount,
			})
			if !domain.IsValidation(err) {
				t.Errorf("amount %v: expected validation error, got %v", amount, err)
			}
		}
	})

	t.Run("unknown payee", func(t *testing.T) {
		_, err := svc.RecordSettlement(bob.ID, RecordSettlementInput{
			PayerID: bob.ID,
			PayeeID: 99999,
			Amount:  50,
		})
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown bill split", func(t *testing.T) {
		badID := uint(4242)
		_, err := svc.RecordSettlement(bob.ID, RecordSettlementInput{
			PayerID:     bob.ID,
			PayeeID:     alice.ID,
			Amount:      50,
			BillSplitID: &badID,
		})
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("records payment against split without mutating it", func(t *testing.T) {
		settlement, err := svc.RecordSettlement(bob.ID, RecordSettlementInput{
			PayerID:     bob.ID,
			PayeeID:     alice.ID,
			Amount:      50,
			BillSplitID: &bs.ID,
			Method:      "cash",
		})
		if err != nil {
			t.Fatalf("RecordSettlement failed: %v", err)
		}
		if settlement.ID == 0 {
			t.Error("expected settlement to be assigned an id")
		}
		if settlement.SettledAt.IsZero() {
			t.Error("expected settled_at to be set")
		}

		after, err := splitSvc.GetSplit(bs.ID)
		if err != nil {
			t.Fatalf("GetSplit failed: %v", err)
		}
		if after.Status != domain.SplitStatusActive {
			t.Errorf("split status = %q, want active (settlement must not mutate it)", after.Status)
		}
		for _, p := range after.Participants {
			if p.Status != domain.ParticipantStatusPending {
				t.Errorf("participant %d status = %q, want pending", p.UserID, p.Status)
			}
			if p.UserID == bob.ID && p.PaidAmount != 0 {
				t.Errorf("participant paid = %v, want 0 (settlement must not mutate shares)", p.PaidAmount)
			}
		}
	})
}

func TestListSettlements(t *testing.T) {
	db := newTestDB(t)
	svc := newSettlementService(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")
	carol := seedUser(t, db, "Carol", "carol@example.com")

	pay := func(payer, payee uint, amount float64) {
		t.Helper()
		if _, err := svc.RecordSettlement(payer, RecordSettlementInput{
			PayerID: payer,
			PayeeID: payee,
			Amount:  amount,
		}); err != nil {
			t.Fatalf("RecordSettlement failed: %v", err)
		}
	}
	pay(alice.ID, bob.ID, 10)
	pay(bob.ID, alice.ID, 20)
	pay(carol.ID, bob.ID, 30)

	settlements, err := svc.ListSettlements(alice.ID)
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(settlements) != 2 {
		t.Fatalf("expected 2 settlements for alice, got %d", len(settlements))
	}
	if settlements[0].Amount != 10 || settlements[1].Amount != 20 {
		t.Errorf("expected insertion order, got amounts %v, %v", settlements[0].Amount, settlements[1].Amount)
	}

	settlements, err = svc.ListSettlements(carol.ID)
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(settlements) != 1 {
		t.Errorf("expected 1 settlement for carol, got %d", len(settlements))
	}
}
