package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scoreboard/internal/models"
	"scoreboard/internal/repository"
)

const (
	msgEventRequired       = "Event name, date, and description are required"
	msgEventUpdateRequired = "Event ID, name, date, and description are required"
	msgEventBadDate        = "Event date must be RFC3339, 'YYYY-MM-DD HH:MM:SS', 'YYYY-MM-DDTHH:MM' or 'YYYY-MM-DD'"
	msgEventNotFound       = "Event not found"
)

const (
	layoutDateTime      = "2006-01-02 15:04:05"
	layoutDateTimeLocal = "2006-01-02T15:04"
	layoutDate          = "2006-01-02"
)

// EventInput is the writable part of an event.
type EventInput struct {
	Name        string
	Date        string
	Description string
}

type EventService struct {
	eventRepo repository.EventRepo
}

func NewEventService(eventRepo repository.EventRepo) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// validDate reports whether s parses with one of the accepted layouts.
// The string is stored as given, not re-formatted.
func validDate(s string) bool {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDateTimeLocal, layoutDate} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func validateEvent(in EventInput, requiredMsg string) error {
	if in.Name == "" || in.Date == "" || in.Description == "" {
		return newError(ErrValidation, requiredMsg)
	}
	if !validDate(in.Date) {
		return newError(ErrValidation, msgEventBadDate)
	}
	return nil
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Create stores a new event and returns the server-assigned id.
func (s *EventService) Create(ctx context.Context, in EventInput) (int, error) {
	if err := validateEvent(in, msgEventRequired); err != nil {
		return 0, err
	}
	id, err := s.eventRepo.Create(ctx, models.Event{Name: in.Name, Date: in.Date, Description: in.Description})
	if err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

// Update replaces an event. A missing id (0) is a validation error; a
// negative id cannot exist and is reported as not found.
func (s *EventService) Update(ctx context.Context, id int, in EventInput) error {
	if id == 0 {
		return newError(ErrValidation, msgEventUpdateRequired)
	}
	if err := validateEvent(in, msgEventUpdateRequired); err != nil {
		return err
	}
	if id < 0 {
		return newError(ErrNotFound, msgEventNotFound)
	}
	err := s.eventRepo.Update(ctx, models.Event{ID: id, Name: in.Name, Date: in.Date, Description: in.Description})
	return mapEventErr(err, "update event")
}

// Delete removes an event. Ids that cannot exist are not found without a
// store round trip.
func (s *EventService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return newError(ErrNotFound, msgEventNotFound)
	}
	return mapEventErr(s.eventRepo.Delete(ctx, id), "delete event")
}

func mapEventErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return newError(ErrNotFound, msgEventNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
