package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/twotier/userapi/internal/application"
	"github.com/twotier/userapi/internal/domain/entity"
	"github.com/twotier/userapi/internal/domain/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*entity.User, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventLogRepository is a mock implementation of repository.EventLogRepository
type MockEventLogRepository struct {
	mock.Mock
}

func (m *MockEventLogRepository) Insert(ctx context.Context, e *entity.EventLog) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventLogRepository) List(ctx context.Context, level string, limit int) ([]entity.EventLog, error) {
	args := m.Called(ctx, level, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.EventLog), args.Error(1)
}

func newService(repo *MockUserRepository, events *MockEventLogRepository) *application.UserService {
	return application.NewUserService(repo, events, nil, "i-test", 5*time.Second)
}

func TestUserService_Create(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventLogRepository)
	svc := newService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		u := args.Get(1).(*entity.User)
		u.ID = 1
		u.CreatedAt = time.Now().UTC()
		u.UpdatedAt = u.CreatedAt
	}).Return(nil).Once()
	mockEvents.On("Insert", mock.Anything, mock.AnythingOfType("*entity.EventLog")).Return(nil).Once()

	u, err := svc.Create(context.Background(), application.CreateUserInput{Name: "Alice", Email: "alice@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestUserService_Create_TrimsInput(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventLogRepository)
	svc := newService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Alice" && u.Email == "alice@example.com"
	})).Return(nil).Once()
	mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Create(context.Background(), application.CreateUserInput{Name: "  Alice  ", Email: " alice@example.com "})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Create_InvalidInput(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo, nil)

	_, err := svc.Create(context.Background(), application.CreateUserInput{Name: "   ", Email: "a@x.com"})
	assert.ErrorIs(t, err, application.ErrInvalidInput)

	_, err = svc.Create(context.Background(), application.CreateUserInput{Name: "A", Email: ""})
	assert.ErrorIs(t, err, application.ErrInvalidInput)

	// invalid input never reaches the store
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventLogRepository)
	svc := newService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail).Once()

	_, err := svc.Create(context.Background(), application.CreateUserInput{Name: "B", Email: "a@x.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	// no event is logged for a failed mutation
	mockEvents.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUserService_Update_Partial(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventLogRepository)
	svc := newService(mockRepo, mockEvents)

	email := "alice2@example.com"
	updated := &entity.User{ID: 7, Name: "Alice", Email: email}

	mockRepo.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(upd repository.UserUpdate) bool {
		return upd.Name == nil && upd.Email != nil && *upd.Email == email
	})).Return(updated, nil).Once()
	mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	u, err := svc.Update(context.Background(), 7, application.UpdateUserInput{Email: &email})
	assert.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, email, u.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Update_Empty(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo, nil)

	_, err := svc.Update(context.Background(), 7, application.UpdateUserInput{})
	assert.ErrorIs(t, err, application.ErrEmptyUpdate)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Update_BlankField(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo, nil)

	blank := "   "
	_, err := svc.Update(context.Background(), 7, application.UpdateUserInput{Name: &blank})
	assert.ErrorIs(t, err, application.ErrInvalidInput)
}

func TestUserService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventLogRepository)
	svc := newService(mockRepo, mockEvents)

	name := "Bob"
	mockRepo.On("Update", mock.Anything, int64(42), mock.Anything).Return(nil, repository.ErrNotFound).Once()

	_, err := svc.Update(context.Background(), 42, application.UpdateUserInput{Name: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	mockEvents.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUserService_Delete(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventLogRepository)
	svc := newService(mockRepo, mockEvents)

	mockRepo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()
	mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	assert.NoError(t, svc.Delete(context.Background(), 3))

	// repeated delete surfaces not-found, never panics
	mockRepo.On("Delete", mock.Anything, int64(3)).Return(repository.ErrNotFound).Once()
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), repository.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestUserService_EventLogFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockEventLogRepository)
	svc := newService(mockRepo, mockEvents)

	mockRepo.On("Delete", mock.Anything, int64(9)).Return(nil).Once()
	mockEvents.On("Insert", mock.Anything, mock.Anything).Return(repository.ErrUnavailable).Once()

	assert.NoError(t, svc.Delete(context.Background(), 9))
	mockEvents.AssertExpectations(t)
}

func TestUserService_List_Unavailable(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := newService(mockRepo, nil)

	mockRepo.On("List", mock.Anything).Return(nil, repository.ErrUnavailable).Once()
	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}
