package services

import (
	"context"
	"sync"

	"atchub/internal/models/db_models"
	"atchub/pkg/utils"
)

// contentStub stands in for the generative provider. Fields are guarded
// because blurb and chat generation run on background goroutines.
type contentStub struct {
	mu sync.Mutex

	fleet      []db_models.FleetShip
	fleetErr   error
	fleetCalls int

	members    []db_models.Member
	membersErr error

	ops    []db_models.Operation
	opsErr error

	summary    *db_models.DashboardSummary
	summaryErr error

	status    db_models.ServerStatusValue
	statusErr error

	blurb string

	reply    *db_models.ChatMessage
	replyErr error

	clips    []string
	clipsErr error
}

func (s *contentStub) FetchFleetCatalogue(ctx context.Context) ([]db_models.FleetShip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fleetCalls++
	return s.fleet, s.fleetErr
}

func (s *contentStub) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fleetCalls
}

func (s *contentStub) setFleet(ships []db_models.FleetShip, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fleet, s.fleetErr = ships, err
}

func (s *contentStub) FetchMemberDirectory(ctx context.Context) ([]db_models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members, s.membersErr
}

func (s *contentStub) FetchOperationsLog(ctx context.Context) ([]db_models.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops, s.opsErr
}

func (s *contentStub) FetchDashboardSummary(ctx context.Context) (*db_models.DashboardSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary, s.summaryErr
}

func (s *contentStub) FetchServerStatus(ctx context.Context) (db_models.ServerStatusValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.statusErr
}

func (s *contentStub) GenerateShipBlurb(ctx context.Context, model, role string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blurb == "" {
		return utils.FallbackShipBlurb
	}
	return s.blurb
}

func (s *contentStub) GenerateChatReply(ctx context.Context, tail []db_models.ChatMessage, roster []db_models.Member, localCallsign string) (*db_models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reply, s.replyErr
}

func (s *contentStub) SearchMediaClips(ctx context.Context, query string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clips, s.clipsErr
}
