package classroom

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name     string
	Capacity int
	Building string
	RoomType string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Classroom, error)
	GetByID(ctx context.Context, id string) (*Classroom, error)
	List(ctx context.Context, filter Filter) ([]*Classroom, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Classroom, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	// Unrecognized room types are stored as-is and display as plain "Room".
	room := &Classroom{
		Name:     req.Name,
		Capacity: req.Capacity,
		Building: req.Building,
		RoomType: RoomType(req.RoomType),
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Classroom, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Classroom, error) {
	return s.repo.List(ctx, filter)
}
