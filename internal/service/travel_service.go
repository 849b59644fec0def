package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Fahiz07/Travel-Tracker/internal/domain"
	"github.com/Fahiz07/Travel-Tracker/internal/repository"
)

var (
	// ErrStateNotFound indicates the submitted name matches no known state.
	ErrStateNotFound = errors.New("state name does not exist")
	// ErrAlreadyVisited indicates the user already recorded this state.
	ErrAlreadyVisited = errors.New("state has already been added")
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// TravelService coordinates visited-state tracking backed by repositories.
type TravelService interface {
	VisitedStates(ctx context.Context, userID int64) ([]string, error)
	AddVisit(ctx context.Context, userID int64, stateName string) error
	Users(ctx context.Context) ([]domain.User, error)
	User(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, name, color string) (*domain.User, error)
}

type travelService struct {
	users  repository.UserRepository
	states repository.StateRepository
	visits repository.VisitRepository
}

func NewTravelService(users repository.UserRepository, states repository.StateRepository, visits repository.VisitRepository) TravelService {
	return &travelService{
		users:  users,
		states: states,
		visits: visits,
	}
}

func (s *travelService) VisitedStates(ctx context.Context, userID int64) ([]string, error) {
	return s.visits.ListCodesByUser(ctx, userID)
}

// AddVisit resolves the state name and records the visit for the user.
// The Has check produces the friendly error on the common path; the unique
// constraint on visited_states catches concurrent duplicates the check misses.
func (s *travelService) AddVisit(ctx context.Context, userID int64, stateName string) error {
	stateName = strings.TrimSpace(stateName)
	if stateName == "" {
		return ErrStateNotFound
	}

	code, err := s.states.CodeByName(ctx, stateName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStateNotFound
		}
		return err
	}

	visited, err := s.visits.Has(ctx, code, userID)
	if err != nil {
		return err
	}
	if visited {
		return ErrAlreadyVisited
	}

	if err := s.visits.Add(ctx, code, userID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyVisited
		}
		return err
	}
	return nil
}

func (s *travelService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *travelService) User(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *travelService) CreateUser(ctx context.Context, name, color string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	color = strings.TrimSpace(color)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if color == "" {
		return nil, errors.New("color is required")
	}

	user := &domain.User{
		Name:  name,
		Color: color,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
