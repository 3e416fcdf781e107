package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maheshrc27/clipdash/internal/models"
	"github.com/maheshrc27/clipdash/internal/rest"
	"github.com/maheshrc27/clipdash/internal/store"
	"github.com/maheshrc27/clipdash/internal/transfer"
)

type ScheduleService interface {
	Create(ctx context.Context, sc *transfer.ScheduleCreation) (*models.ContentSchedule, error)
	List(ctx context.Context) ([]models.ContentSchedule, error)
	Get(ctx context.Context, scheduleID int64) (*models.ContentSchedule, error)
	Update(ctx context.Context, scheduleID int64, su *transfer.ScheduleUpdate) (*models.ContentSchedule, error)
	Remove(ctx context.Context, scheduleID int64) error
	Suggestions(ctx context.Context) ([]models.ScheduleSuggestion, error)
	Calendar(ctx context.Context, year, month int, accountID int64) ([]models.CalendarDay, error)
	CreatePost(ctx context.Context, pc *transfer.ScheduledPostCreation) (*models.ScheduledPost, error)
	GetPost(ctx context.Context, postID int64) (*models.ScheduledPost, error)
	UpdatePost(ctx context.Context, postID int64, pu *transfer.ScheduledPostUpdate) (*models.ScheduledPost, error)
	RemovePost(ctx context.Context, postID int64) error
}

type scheduleService struct {
	client *rest.Client
	st     *store.Store
}

func NewScheduleService(client *rest.Client, st *store.Store) ScheduleService {
	return &scheduleService{client: client, st: st}
}

func (s *scheduleService) Create(ctx context.Context, sc *transfer.ScheduleCreation) (*models.ContentSchedule, error) {
	if sc == nil {
		return nil, errors.New("schedule creation data is nil")
	}
	if sc.Name == "" {
		err := errors.New("schedule name cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}
	if len(sc.DaysOfWeek) == 0 || len(sc.PostingTimes) == 0 {
		err := errors.New("schedule needs at least one day and one posting time")
		slog.Info(err.Error())
		return nil, err
	}

	var schedule models.ContentSchedule
	if err := s.client.Post(ctx, "/schedules/", sc, &schedule); err != nil {
		return nil, fmt.Errorf("error creating schedule: %w", err)
	}
	return &schedule, nil
}

func (s *scheduleService) List(ctx context.Context) ([]models.ContentSchedule, error) {
	var schedules []models.ContentSchedule
	if err := s.client.Get(ctx, "/schedules/", &schedules); err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}
	return schedules, nil
}

func (s *scheduleService) Get(ctx context.Context, scheduleID int64) (*models.ContentSchedule, error) {
	var schedule models.ContentSchedule
	if err := s.client.Get(ctx, fmt.Sprintf("/schedules/%d", scheduleID), &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *scheduleService) Update(ctx context.Context, scheduleID int64, su *transfer.ScheduleUpdate) (*models.ContentSchedule, error) {
	var schedule models.ContentSchedule
	if err := s.client.Put(ctx, fmt.Sprintf("/schedules/%d", scheduleID), su, &schedule); err != nil {
		return nil, fmt.Errorf("error updating schedule: %w", err)
	}
	return &schedule, nil
}

func (s *scheduleService) Remove(ctx context.Context, scheduleID int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/schedules/%d", scheduleID)); err != nil {
		return fmt.Errorf("error removing schedule: %w", err)
	}
	return nil
}

func (s *scheduleService) Suggestions(ctx context.Context) ([]models.ScheduleSuggestion, error) {
	var suggestions []models.ScheduleSuggestion
	if err := s.client.Get(ctx, "/schedules/suggestions", &suggestions); err != nil {
		return nil, fmt.Errorf("error fetching suggestions: %w", err)
	}
	return suggestions, nil
}

func (s *scheduleService) Calendar(ctx context.Context, year, month int, accountID int64) ([]models.CalendarDay, error) {
	if month < 1 || month > 12 {
		err := fmt.Errorf("month %d is out of range", month)
		slog.Info(err.Error())
		return nil, err
	}

	path := fmt.Sprintf("/schedules/calendar/%d/%d", year, month)
	if accountID != 0 {
		path = fmt.Sprintf("%s?account_id=%d", path, accountID)
	}

	var days []models.CalendarDay
	if err := s.client.Get(ctx, path, &days); err != nil {
		return nil, fmt.Errorf("error fetching calendar: %w", err)
	}
	return days, nil
}

func (s *scheduleService) CreatePost(ctx context.Context, pc *transfer.ScheduledPostCreation) (*models.ScheduledPost, error) {
	if pc == nil {
		return nil, errors.New("post creation data is nil")
	}
	if pc.ScheduleID == 0 {
		err := errors.New("schedule id is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var post models.ScheduledPost
	if err := s.client.Post(ctx, "/schedules/posts", pc, &post); err != nil {
		return nil, fmt.Errorf("error creating scheduled post: %w", err)
	}
	s.st.UpdateScheduledPost(post)
	return &post, nil
}

func (s *scheduleService) GetPost(ctx context.Context, postID int64) (*models.ScheduledPost, error) {
	var post models.ScheduledPost
	if err := s.client.Get(ctx, fmt.Sprintf("/schedules/posts/%d", postID), &post); err != nil {
		return nil, err
	}
	s.st.UpdateScheduledPost(post)
	return &post, nil
}

func (s *scheduleService) UpdatePost(ctx context.Context, postID int64, pu *transfer.ScheduledPostUpdate) (*models.ScheduledPost, error) {
	var post models.ScheduledPost
	if err := s.client.Put(ctx, fmt.Sprintf("/schedules/posts/%d", postID), pu, &post); err != nil {
		return nil, fmt.Errorf("error updating scheduled post: %w", err)
	}
	s.st.UpdateScheduledPost(post)
	return &post, nil
}

func (s *scheduleService) RemovePost(ctx context.Context, postID int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/schedules/posts/%d", postID)); err != nil {
		return fmt.Errorf("error removing scheduled post: %w", err)
	}
	s.st.RemoveScheduledPost(postID)
	return nil
}
