package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/dto"
	"observer-portal/backend/internal/model"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/querycache"
)

// ── observer module errors ──

var (
	ErrNoSession       = errors.New("no session cookie presented")
	ErrSessionRejected = errors.New("session not accepted by identity service")
)

// ObserverService resolves and caches the authenticated observer. The
// profile is fetched once per session cookie and treated as read-only;
// every dependent view is gated on its presence.
type ObserverService interface {
	ByCookie(ctx context.Context, cookie string) (*model.Observer, error)
	Links(ctx context.Context, obsID int) ([]model.EmployeeLink, error)
	Profile(observer *model.Observer) *dto.ObserverResponse
	// DropSession forgets a cached session, e.g. on logout. A lookup still
	// in flight for the old session cannot repopulate the cache.
	DropSession(cookie string)
}

type observerService struct {
	clients  *upstream.Clients
	sessions *querycache.Cache[string, *model.Observer]
	logger   *zap.Logger
}

// NewObserverService creates an ObserverService.
func NewObserverService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) ObserverService {
	return &observerService{
		clients:  clients,
		sessions: querycache.New[string, *model.Observer](cfg.Session.CacheTTL),
		logger:   logger,
	}
}

func (s *observerService) ByCookie(ctx context.Context, cookie string) (*model.Observer, error) {
	if strings.TrimSpace(cookie) == "" {
		return nil, ErrNoSession
	}

	observer, err := s.sessions.Do(ctx, cookie, func(ctx context.Context) (*model.Observer, error) {
		return s.clients.Identity.ObserverByCookie(ctx, cookie)
	})
	if err != nil {
		s.logger.Warn("identity lookup failed", zap.Error(err))
		return nil, ErrSessionRejected
	}
	return observer, nil
}

func (s *observerService) Links(ctx context.Context, obsID int) ([]model.EmployeeLink, error) {
	links, err := s.clients.Employee.EmployeeLinks(ctx, obsID)
	if err != nil {
		s.logger.Warn("employee links fetch failed", zap.Int("obsid", obsID), zap.Error(err))
		// Personalised links are optional decoration; absent on failure.
		return nil, nil
	}
	return links, nil
}

func (s *observerService) Profile(observer *model.Observer) *dto.ObserverResponse {
	address := make([]string, 0, 5)
	for _, part := range []string{observer.Street, observer.City, observer.State, observer.Zip, observer.Country} {
		if part != "" {
			address = append(address, part)
		}
	}

	return &dto.ObserverResponse{
		ID:          observer.ID,
		Name:        observer.FullName(),
		Email:       observer.Email,
		Affiliation: observer.Affiliation,
		WorkArea:    observer.WorkArea,
		Interests:   observer.Interests,
		Address:     strings.Join(address, ", "),
		Phone:       observer.Phone,
		URL:         observer.URL,
		PictureURL:  observer.ProfilePictureURL,
	}
}

func (s *observerService) DropSession(cookie string) {
	s.sessions.Invalidate(cookie)
}
