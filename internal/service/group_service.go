package service

import (
	"errors"

	"smartsave/internal/domain"
	"smartsave/internal/models"
	"smartsave/internal/repository"

	"gorm.io/gorm"
)

// GroupService owns group membership rules: the creator is always an
// implicit member, only the creator may edit or delete, and updates replace
// the non-creator member set wholesale.
type GroupService struct {
	groupRepo *repository.GroupRepository
	userRepo  *repository.UserRepository
}

func NewGroupService(groupRepo *repository.GroupRepository, userRepo *repository.UserRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, userRepo: userRepo}
}

type CreateGroupInput struct {
	Name     string
	Type     string
	Currency string
	IconURL  string
	Members  []uint
}

type UpdateGroupInput struct {
	Name    string
	Type    string
	Members []uint
}

func (s *GroupService) checkMembersExist(memberIDs []uint) error {
	for _, id := range memberIDs {
		ok, err := s.userRepo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.Validationf("user with ID %d does not exist", id)
		}
	}
	return nil
}

// CreateGroup creates a group whose membership is the creator plus the
// listed members, deduplicated. The creator is added exactly once even when
// listed explicitly.
func (s *GroupService) CreateGroup(actorID uint, in CreateGroupInput) (*models.Group, []uint, error) {
	if in.Name == "" {
		return nil, nil, domain.Validationf("group name is required")
	}
	groupType := in.Type
	if groupType == "" {
		groupType = domain.GroupTypeCustom
	}
	if !domain.IsValidGroupType(groupType) {
		return nil, nil, domain.Validationf("invalid group type. Use: Trip, Home, Event, Custom")
	}
	if err := s.checkMembersExist(in.Members); err != nil {
		return nil, nil, err
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	memberIDs := []uint{actorID}
	seen := map[uint]bool{actorID: true}
	for _, id := range in.Members {
		if !seen[id] {
			seen[id] = true
			memberIDs = append(memberIDs, id)
		}
	}

	g := &models.Group{
		Name:      in.Name,
		CreatorID: actorID,
		Type:      groupType,
		Currency:  currency,
		IconURL:   in.IconURL,
	}
	if err := s.groupRepo.CreateWithMembers(g, memberIDs); err != nil {
		return nil, nil, err
	}
	return g, memberIDs, nil
}

// UpdateGroup renames/retypes the group and replaces the non-creator member
// set with the listed one. The creator is never removable. Creator-only.
func (s *GroupService) UpdateGroup(actorID, groupID uint, in UpdateGroupInput) (*models.Group, []uint, error) {
	g, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, err
	}
	if g.CreatorID != actorID {
		return nil, nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, nil, domain.Validationf("group name is required")
	}
	groupType := in.Type
	if groupType == "" {
		groupType = g.Type
	}
	if !domain.IsValidGroupType(groupType) {
		return nil, nil, domain.Validationf("invalid group type. Use: Trip, Home, Event, Custom")
	}
	if err := s.checkMembersExist(in.Members); err != nil {
		return nil, nil, err
	}

	current, err := s.groupRepo.MemberIDs(groupID)
	if err != nil {
		return nil, nil, err
	}
	currentSet := make(map[uint]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	wantSet := make(map[uint]bool, len(in.Members))
	for _, id := range in.Members {
		wantSet[id] = true
	}

	var addIDs, removeIDs []uint
	for id := range wantSet {
		if !currentSet[id] && id != actorID {
			addIDs = append(addIDs, id)
		}
	}
	for _, id := range current {
		if !wantSet[id] && id != actorID {
			removeIDs = append(removeIDs, id)
		}
	}

	g.Name = in.Name
	g.Type = groupType
	if err := s.groupRepo.UpdateWithMembers(g, addIDs, removeIDs); err != nil {
		return nil, nil, err
	}
	memberIDs, err := s.groupRepo.MemberIDs(groupID)
	if err != nil {
		return nil, nil, err
	}
	return g, memberIDs, nil
}

// DeleteGroup soft-deletes the group after hard-deleting its bill splits
// (with their participants and settlements) and memberships. Creator-only.
func (s *GroupService) DeleteGroup(actorID, groupID uint) error {
	g, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if g.CreatorID != actorID {
		return domain.ErrForbidden
	}
	return s.groupRepo.DeleteCascade(g)
}

// GetGroup returns the group and its member ids. Members only.
func (s *GroupService) GetGroup(actorID, groupID uint) (*models.Group, []uint, error) {
	g, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, err
	}
	member, err := s.groupRepo.IsMember(groupID, actorID)
	if err != nil {
		return nil, nil, err
	}
	if !member && g.CreatorID != actorID {
		return nil, nil, domain.ErrForbidden
	}
	memberIDs, err := s.groupRepo.MemberIDs(groupID)
	if err != nil {
		return nil, nil, err
	}
	return g, memberIDs, nil
}

func (s *GroupService) ListGroups(userID uint) ([]models.Group, error) {
	return s.groupRepo.ListByUser(userID)
}

func (s *GroupService) IsMember(groupID, userID uint) (bool, error) {
	return s.groupRepo.IsMember(groupID, userID)
}
