package services

import (
	"atchub/internal/models/db_models"
	"atchub/internal/repositories"
	"atchub/pkg/utils"
)

type IdentityServiceInterface interface {
	// Authenticate succeeds only for a case-insensitive callsign match, an
	// exact credential match, and approved status. Every failure mode yields
	// the same error so callsigns cannot be enumerated.
	Authenticate(callsign, password string) (db_models.Account, error)
	Register(callsign, password string) (db_models.Account, error)
	AllAccounts() []db_models.Account
	ApprovedAccounts() []db_models.Account
	SetApproval(id int64, status db_models.AccessStatus)
	Remove(id int64)
	UpdateRole(callsign, role string)
	UpdateAvatar(callsign, avatarURL string)
	AddOwnedShip(callsign, model, imageURL string) (*db_models.OwnedShip, error)
	RemoveOwnedShip(callsign string, shipID int64)
}

type identityService struct {
	accountRepo repositories.AccountRepository
}

func NewIdentityService(accountRepo repositories.AccountRepository) IdentityServiceInterface {
	return &identityService{
		accountRepo: accountRepo,
	}
}

func (s *identityService) Authenticate(callsign, password string) (db_models.Account, error) {
	account := s.accountRepo.FindByCallsign(callsign)
	if account == nil {
		return db_models.Account{}, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, password); err != nil {
		return db_models.Account{}, utils.ErrInvalidCredentials
	}
	if account.AccessStatus != db_models.AccessApproved {
		return db_models.Account{}, utils.ErrInvalidCredentials
	}
	return *account, nil
}

func (s *identityService) Register(callsign, password string) (db_models.Account, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return db_models.Account{}, err
	}
	return s.accountRepo.Register(callsign, hash)
}

func (s *identityService) AllAccounts() []db_models.Account {
	return s.accountRepo.List()
}

func (s *identityService) ApprovedAccounts() []db_models.Account {
	all := s.accountRepo.List()
	approved := make([]db_models.Account, 0, len(all))
	for _, a := range all {
		if a.AccessStatus == db_models.AccessApproved {
			approved = append(approved, a)
		}
	}
	return approved
}

func (s *identityService) SetApproval(id int64, status db_models.AccessStatus) {
	s.accountRepo.SetApproval(id, status)
}

func (s *identityService) Remove(id int64) {
	s.accountRepo.Remove(id)
}

func (s *identityService) UpdateRole(callsign, role string) {
	s.accountRepo.UpdateRole(callsign, role)
}

func (s *identityService) UpdateAvatar(callsign, avatarURL string) {
	s.accountRepo.UpdateAvatar(callsign, avatarURL)
}

func (s *identityService) AddOwnedShip(callsign, model, imageURL string) (*db_models.OwnedShip, error) {
	ship := s.accountRepo.AddShip(callsign, model, imageURL)
	if ship == nil {
		return nil, utils.ErrAccountNotFound
	}
	return ship, nil
}

func (s *identityService) RemoveOwnedShip(callsign string, shipID int64) {
	s.accountRepo.RemoveShip(callsign, shipID)
}
