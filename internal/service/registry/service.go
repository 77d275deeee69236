package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/session"
	"github.com/google/uuid"
)

type RegistryServiceImpl struct {
	registryRepo  registry.Repository
	sessionRepo   session.Repository
	adminID       string
	retentionDays int
	now           func() time.Time
}

func NewRegistryService(
	registryRepo registry.Repository,
	sessionRepo session.Repository,
	adminID string,
	retentionDays int,
) registry.Service {
	return &RegistryServiceImpl{
		registryRepo:  registryRepo,
		sessionRepo:   sessionRepo,
		adminID:       adminID,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// DefaultPIN derives the default access code for an employee name.
func DefaultPIN(name string) string {
	return strings.ToLower(name) + "123"
}

// effectivePIN resolves the custom override or the derived default.
func effectivePIN(emp registry.Employee) string {
	if emp.CustomPIN != nil && *emp.CustomPIN != "" {
		return *emp.CustomPIN
	}
	return DefaultPIN(emp.Name)
}

// ListTeams implements registry.Service.
func (s *RegistryServiceImpl) ListTeams(ctx context.Context) ([]registry.TeamResponse, error) {
	teams, err := s.registryRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]registry.TeamResponse, 0, len(teams))
	for _, team := range teams {
		tr := registry.TeamResponse{
			ID:        team.ID,
			Name:      team.Name,
			Employees: make([]registry.EmployeeResponse, 0, len(team.Employees)),
		}
		for _, emp := range team.Employees {
			tr.Employees = append(tr.Employees, registry.EmployeeResponse{
				ID:     emp.ID,
				Name:   emp.Name,
				TeamID: emp.TeamID,
				PIN:    effectivePIN(emp),
			})
		}
		out = append(out, tr)
	}
	return out, nil
}

// FindEmployee implements registry.Service.
func (s *RegistryServiceImpl) FindEmployee(ctx context.Context, id string) (registry.Employee, error) {
	teams, err := s.registryRepo.Load(ctx)
	if err != nil {
		return registry.Employee{}, err
	}

	for _, team := range teams {
		for _, emp := range team.Employees {
			if emp.ID == id {
				return emp, nil
			}
		}
	}
	return registry.Employee{}, registry.ErrEmployeeNotFound
}

// FindTeam implements registry.Service.
func (s *RegistryServiceImpl) FindTeam(ctx context.Context, id string) (registry.Team, error) {
	teams, err := s.registryRepo.Load(ctx)
	if err != nil {
		return registry.Team{}, err
	}

	for _, team := range teams {
		if team.ID == id {
			return team, nil
		}
	}
	return registry.Team{}, registry.ErrTeamNotFound
}

// AddEmployee implements registry.Service.
func (s *RegistryServiceImpl) AddEmployee(ctx context.Context, req registry.AddEmployeeRequest) (registry.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return registry.EmployeeResponse{}, err
	}

	teams, err := s.registryRepo.Load(ctx)
	if err != nil {
		return registry.EmployeeResponse{}, err
	}

	newEmployee := registry.Employee{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(req.Name),
		TeamID: req.TeamID,
	}

	found := false
	for i := range teams {
		if teams[i].ID == req.TeamID {
			teams[i].Employees = append(teams[i].Employees, newEmployee)
			found = true
			break
		}
	}
	if !found {
		return registry.EmployeeResponse{}, registry.ErrTeamNotFound
	}

	if err := s.registryRepo.Save(ctx, teams); err != nil {
		return registry.EmployeeResponse{}, fmt.Errorf("failed to save registry: %w", err)
	}

	return registry.EmployeeResponse{
		ID:     newEmployee.ID,
		Name:   newEmployee.Name,
		TeamID: newEmployee.TeamID,
		PIN:    DefaultPIN(newEmployee.Name),
	}, nil
}

// DeleteEmployee implements registry.Service. Removes the employee
// from their team and purges their persisted session lists across the
// retention window.
func (s *RegistryServiceImpl) DeleteEmployee(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return registry.ErrConfirmationRequired
	}

	teams, err := s.registryRepo.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range teams {
		kept := teams[i].Employees[:0]
		for _, emp := range teams[i].Employees {
			if emp.ID == id {
				found = true
				continue
			}
			kept = append(kept, emp)
		}
		teams[i].Employees = kept
	}
	if !found {
		return registry.ErrEmployeeNotFound
	}

	if err := s.registryRepo.Save(ctx, teams); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}

	today := s.now()
	for i := 0; i < s.retentionDays; i++ {
		day := session.DayKey(today.AddDate(0, 0, -i))
		if err := s.sessionRepo.DeleteDay(ctx, id, day); err != nil {
			return fmt.Errorf("failed to purge sessions for day %s: %w", day, err)
		}
	}
	return nil
}

// SetPIN implements registry.Service.
func (s *RegistryServiceImpl) SetPIN(ctx context.Context, id string, req registry.SetPINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	teams, err := s.registryRepo.Load(ctx)
	if err != nil {
		return err
	}

	pin := strings.ToLower(strings.TrimSpace(req.PIN))

	found := false
	for i := range teams {
		for j := range teams[i].Employees {
			if teams[i].Employees[j].ID == id {
				teams[i].Employees[j].CustomPIN = &pin
				found = true
			}
		}
	}
	if !found {
		return registry.ErrEmployeeNotFound
	}

	if err := s.registryRepo.Save(ctx, teams); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	return nil
}

// VerifyPIN implements registry.Service. Comparison is
// case-insensitive on the supplied input; a mismatch never locks the
// account.
func (s *RegistryServiceImpl) VerifyPIN(ctx context.Context, req registry.VerifyPINRequest) (registry.VerifyPINResponse, error) {
	if err := req.Validate(); err != nil {
		return registry.VerifyPINResponse{}, err
	}

	emp, err := s.FindEmployee(ctx, req.EmployeeID)
	if err != nil {
		return registry.VerifyPINResponse{}, err
	}

	if strings.ToLower(req.PIN) != effectivePIN(emp) {
		return registry.VerifyPINResponse{}, registry.ErrInvalidPIN
	}

	return registry.VerifyPINResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		TeamID:       emp.TeamID,
		Admin:        s.IsAdmin(emp.ID),
	}, nil
}

// IsAdmin implements registry.Service.
func (s *RegistryServiceImpl) IsAdmin(id string) bool {
	return id == s.adminID
}
