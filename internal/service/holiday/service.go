package holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/punchdesk/attendance-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: holidayRepo}
}

// UpsertHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) UpsertHoliday(ctx context.Context, req holiday.UpsertHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := holiday.Holiday{
		Date: req.Date,
		Name: req.Name,
		Type: holiday.Type(req.Type),
	}

	if err := s.HolidayRepository.Upsert(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return holiday.HolidayResponse{
		Date: h.Date,
		Name: h.Name,
		Type: string(h.Type),
	}, nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, date string) error {
	if err := s.HolidayRepository.Delete(ctx, date); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.HolidayResponse{
			Date: h.Date,
			Name: h.Name,
			Type: string(h.Type),
		})
	}
	return responses, nil
}
