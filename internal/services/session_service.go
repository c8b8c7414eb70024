package services

import (
	"atchub/internal/models/response_models"
	mem "atchub/pkg/memcache"
	"atchub/pkg/utils"
)

type SessionServiceInterface interface {
	Login(callsign, password string) (response_models.LoginResponse, error)
	Logout(token string)
}

type sessionService struct {
	identity      IdentityServiceInterface
	fleet         FleetServiceInterface
	revoked       mem.RevokedTokenStore
	adminCallsign string
}

func NewSessionService(identity IdentityServiceInterface, fleet FleetServiceInterface, revoked mem.RevokedTokenStore, adminCallsign string) SessionServiceInterface {
	return &sessionService{
		identity:      identity,
		fleet:         fleet,
		revoked:       revoked,
		adminCallsign: adminCallsign,
	}
}

func (s *sessionService) Login(callsign, password string) (response_models.LoginResponse, error) {
	account, err := s.identity.Authenticate(callsign, password)
	if err != nil {
		return response_models.LoginResponse{}, err
	}

	isAdmin := account.Callsign == s.adminCallsign
	token, err := utils.CreateToken(account.Callsign, isAdmin)
	if err != nil {
		return response_models.LoginResponse{}, err
	}

	// One guarded catalogue fetch per session; EnsureLoaded no-ops while a
	// load is in flight or the fleet is already populated.
	go s.fleet.EnsureLoaded()

	return response_models.LoginResponse{
		Token:    token,
		Callsign: account.Callsign,
		IsAdmin:  isAdmin,
	}, nil
}

func (s *sessionService) Logout(token string) {
	s.revoked.Revoke(token, utils.TokenTTL)
	// Fleet data is fresh per session: clearing forces a refetch on next login.
	s.fleet.ResetCatalogue()
}
