package employee

import (
	"context"
	"errors"
	"strings"

	"go-empms/internal/events"
	"go-empms/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (*EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo      Repository
	publisher EventPublisher
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// publish sends the audit message and swallows any failure. A persisted
// change must never be rolled back or reported as failed because the
// audit channel is down.
func (s *service) publish(ctx context.Context, eventType string, id uint) {
	if err := s.publisher.PublishEmployeeEvent(ctx, eventType, id); err != nil {
		s.logger.Warn("publish employee event failed",
			zap.String("event_type", eventType),
			zap.Uint("employee_id", id),
			zap.Error(err),
		)
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("username", req.Username),
	)

	empl := &Employee{
		Name:       req.Name,
		Username:   req.Username,
		Department: req.Department,
		Salary:     *req.Salary,
	}

	if err := s.repo.Save(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.EventCreate, empl.ID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")

	// Collapse concurrent identical list queries into one store round trip.
	v, err, _ := s.sf.Do("employees:all", func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		return mapToListResponse(empls), nil
	})
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

// GetByID publishes the READ event before querying so that every access
// attempt is audited, found or not. A missing record is not an error:
// the caller gets a nil response.
func (s *service) GetByID(ctx context.Context, id uint) (*EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))

	s.publish(ctx, events.EventRead, id)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("get employee by id failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := mapToResponse(*empl)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	applyPatch(empl, req)

	if err := s.repo.Save(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.publish(ctx, events.EventUpdate, empl.ID)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("delete employee fetch existing failed", zap.Uint("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, empl); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.publish(ctx, events.EventDelete, id)

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)
	return nil
}

// applyPatch overwrites only the fields the patch actually carries. Text
// fields that are blank after trimming keep their stored value.
func applyPatch(empl *Employee, req UpdateEmployeeRequest) {
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		empl.Name = *req.Name
	}
	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		empl.Username = *req.Username
	}
	if req.Department != nil && strings.TrimSpace(*req.Department) != "" {
		empl.Department = *req.Department
	}
	if req.Salary != nil {
		empl.Salary = *req.Salary
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID,
		Name:       empl.Name,
		Username:   empl.Username,
		Department: empl.Department,
		Salary:     empl.Salary,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
