package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/twotier/userapi/internal/domain/entity"
	repo "github.com/twotier/userapi/internal/domain/repository"
)

var (
	ErrInvalidInput = errors.New("name and email are required")
	ErrEmptyUpdate  = errors.New("no fields to update")
)

// UserService implements the CRUD operations over user records. It owns no
// state beyond the request lifetime; the store is the single owner of records,
// so any number of instances can run behind the load balancer.
type UserService struct {
	Repo       repo.UserRepository
	Events     repo.EventLogRepository
	Logger     *logrus.Logger
	InstanceID string
	// StoreTimeout bounds each store round trip so a stalled connection turns
	// into a store-unavailable answer instead of a hung request.
	StoreTimeout time.Duration
}

func NewUserService(r repo.UserRepository, events repo.EventLogRepository, logger *logrus.Logger, instanceID string, storeTimeout time.Duration) *UserService {
	return &UserService{
		Repo:         r,
		Events:       events,
		Logger:       logger,
		InstanceID:   instanceID,
		StoreTimeout: storeTimeout,
	}
}

type CreateUserInput struct {
	Name  string
	Email string
}

type UpdateUserInput struct {
	Name  *string
	Email *string
}

func (s *UserService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.StoreTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.StoreTimeout)
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, ErrInvalidInput
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u := &entity.User{Name: name, Email: email}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logEvent(ctx, "INFO", fmt.Sprintf("created user %d (%s)", u.ID, u.Email))
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.Repo.GetByID(ctx, id)
}

// Update applies a partial update: nil fields keep their stored value. An
// update carrying no recognized fields is rejected before touching the store.
func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	upd := repo.UserUpdate{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		upd.Name = &name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, ErrInvalidInput
		}
		upd.Email = &email
	}
	if upd.Name == nil && upd.Email == nil {
		return nil, ErrEmptyUpdate
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.Repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logEvent(ctx, "INFO", fmt.Sprintf("updated user %d", id))
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logEvent(ctx, "INFO", fmt.Sprintf("deleted user %d", id))
	return nil
}

// logEvent records a mutation in the persisted event log. Failures are logged
// to the process logger and never fail the request.
func (s *UserService) logEvent(ctx context.Context, level, message string) {
	if s.Events == nil {
		return
	}
	e := &entity.EventLog{Level: level, Message: message, InstanceID: s.InstanceID}
	if err := s.Events.Insert(ctx, e); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("message", message).Warn("event log write failed")
	}
}
