package service

import (
	"errors"
	"testing"

	"smartsave/internal/domain"
	"smartsave/internal/models"
)

func TestCreateGroup(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	t.Run("creator is implicit member and deduped", func(t *testing.T) {
		g, memberIDs, err := svc.CreateGroup(alice.ID, CreateGroupInput{
			Name:    "Roadtrip",
			Type:    domain.GroupTypeTrip,
			Members: []uint{bob.ID, alice.ID, bob.ID},
		})
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if g.CreatorID != alice.ID {
			t.Errorf("creator = %d, want %d", g.CreatorID, alice.ID)
		}
		if len(memberIDs) != 2 {
			t.Fatalf("expected 2 members, got %v", memberIDs)
		}
		if memberIDs[0] != alice.ID {
			t.Errorf("first member = %d, want creator %d", memberIDs[0], alice.ID)
		}
		ok, err := svc.IsMember(g.ID, alice.ID)
		if err != nil || !ok {
			t.Errorf("creator membership = %v, %v; want true, nil", ok, err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		_, _, err := svc.CreateGroup(alice.ID, CreateGroupInput{Type: domain.GroupTypeTrip})
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		_, _, err := svc.CreateGroup(alice.ID, CreateGroupInput{Name: "X", Type: "commune"})
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("empty type defaults to custom", func(t *testing.T) {
		g, _, err := svc.CreateGroup(alice.ID, CreateGroupInput{Name: "Misc"})
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if g.Type != domain.GroupTypeCustom {
			t.Errorf("type = %q, want custom", g.Type)
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		_, _, err := svc.CreateGroup(alice.ID, CreateGroupInput{
			Name:    "Ghosts",
			Members: []uint{99999},
		})
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
		if n := countRows(t, db, &models.Group{}, "name = ?", "Ghosts"); n != 0 {
			t.Errorf("expected no group persisted, got %d", n)
		}
	})
}

func TestUpdateGroup(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")
	carol := seedUser(t, db, "Carol", "carol@example.com")

	g, _, err := svc.CreateGroup(alice.ID, CreateGroupInput{
		Name:    "Flat",
		Type:    domain.GroupTypeHome,
		Members: []uint{bob.ID},
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	t.Run("non-creator forbidden", func(t *testing.T) {
		_, _, err := svc.UpdateGroup(bob.ID, g.ID, UpdateGroupInput{Name: "Bob's Flat"})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("member list is fully replaced", func(t *testing.T) {
		_, memberIDs, err := svc.UpdateGroup(alice.ID, g.ID, UpdateGroupInput{
			Name:    "Flat",
			Members: []uint{carol.ID},
		})
		if err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		got := map[uint]bool{}
		for _, id := range memberIDs {
			got[id] = true
		}
		if !got[alice.ID] || !got[carol.ID] || got[bob.ID] {
			t.Errorf("members = %v, want creator+carol without bob", memberIDs)
		}
		ok, _ := svc.IsMember(g.ID, bob.ID)
		if ok {
			t.Error("bob should no longer be a member")
		}
	})

	t.Run("creator cannot be removed", func(t *testing.T) {
		_, memberIDs, err := svc.UpdateGroup(alice.ID, g.ID, UpdateGroupInput{
			Name:    "Flat",
			Members: []uint{},
		})
		if err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		if len(memberIDs) != 1 || memberIDs[0] != alice.ID {
			t.Errorf("members = %v, want only creator", memberIDs)
		}
	})

	t.Run("rename and retype", func(t *testing.T) {
		updated, _, err := svc.UpdateGroup(alice.ID, g.ID, UpdateGroupInput{
			Name: "Old Flat",
			Type: domain.GroupTypeCustom,
		})
		if err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		if updated.Name != "Old Flat" || updated.Type != domain.GroupTypeCustom {
			t.Errorf("got %q/%q, want Old Flat/custom", updated.Name, updated.Type)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		_, _, err := svc.UpdateGroup(alice.ID, 99999, UpdateGroupInput{Name: "X"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteGroup(t *testing.T) {
	db := newTestDB(t)
	groupSvc := newGroupService(db)
	splitSvc := newSplitService(db)
	settlementSvc := newSettlementService(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	g, _, err := groupSvc.CreateGroup(alice.ID, CreateGroupInput{
		Name:    "Trip",
		Type:    domain.GroupTypeTrip,
		Members: []uint{bob.ID},
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	bs, err := splitSvc.CreateSplit(alice.ID, CreateSplitInput{
		Name:        "Hotel",
		TotalAmount: 200,
		GroupID:     &g.ID,
		Participants: []ParticipantInput{
			{UserID: alice.ID},
			{UserID: bob.ID},
		},
	})
	if err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	if _, err := settlementSvc.RecordSettlement(bob.ID, RecordSettlementInput{
		PayerID:     bob.ID,
		PayeeID:     alice.ID,
		Amount:      100,
		BillSplitID: &bs.ID,
	}); err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}

	t.Run("non-creator forbidden", func(t *testing.T) {
		if err := groupSvc.DeleteGroup(bob.ID, g.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("creator delete cascades to splits and settlements", func(t *testing.T) {
		if err := groupSvc.DeleteGroup(alice.ID, g.ID); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}
		if n := countRows(t, db, &models.BillSplit{}, "group_id = ?", g.ID); n != 0 {
			t.Errorf("expected 0 bill splits, got %d", n)
		}
		if n := countRows(t, db, &models.SplitParticipant{}, "bill_split_id = ?", bs.ID); n != 0 {
			t.Errorf("expected 0 participants, got %d", n)
		}
		if n := countRows(t, db, &models.Settlement{}, "bill_split_id = ?", bs.ID); n != 0 {
			t.Errorf("expected 0 settlements, got %d", n)
		}
		if n := countRows(t, db, &models.GroupMember{}, "group_id = ?", g.ID); n != 0 {
			t.Errorf("expected 0 memberships, got %d", n)
		}
	})

	t.Run("group is soft deleted", func(t *testing.T) {
		if _, _, err := groupSvc.GetGroup(alice.ID, g.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		var n int64
		if err := db.Unscoped().Model(&models.Group{}).Where("id = ?", g.ID).Count(&n).Error; err != nil {
			t.Fatalf("unscoped count failed: %v", err)
		}
		if n != 1 {
			t.Errorf("expected soft-deleted row to remain, got %d", n)
		}
	})
}

func TestGetGroupVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")
	outsider := seedUser(t, db, "Eve", "eve@example.com")

	g, _, err := svc.CreateGroup(alice.ID, CreateGroupInput{
		Name:    "Flat",
		Type:    domain.GroupTypeHome,
		Members: []uint{bob.ID},
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if _, _, err := svc.GetGroup(bob.ID, g.ID); err != nil {
		t.Errorf("member GetGroup failed: %v", err)
	}
	if _, _, err := svc.GetGroup(outsider.ID, g.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for outsider, got %v", err)
	}

	groups, err := svc.ListGroups(bob.ID)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("expected 1 group for bob, got %d", len(groups))
	}
	groups, err = svc.ListGroups(outsider.ID)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected 0 groups for outsider, got %d", len(groups))
	}
}
