package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marg-ai/internal/domain"
	"marg-ai/internal/repository"
)

// UserService coordina registro, login y lectura de perfiles.
type UserService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	limiter AttemptLimiter
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, limiter AttemptLimiter) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limiter == nil {
		limiter = NewMemoryAttemptLimiter(defaultAttemptWindow, defaultMaxAttempts)
	}
	return &UserService{
		logger:  logger,
		users:   users,
		limiter: limiter,
	}
}

type RegisterInput struct {
	FullName         string
	Email            string
	Password         string
	EducationStage   string
	WeeklyStudyHours string
	Subjects         []domain.Subject
	Degree           string
	Major            string
	CGPARange        string
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidInput       = errors.New("invalid input")
	ErrRateLimited        = errors.New("rate limited")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	fullName := strings.TrimSpace(input.FullName)
	emailAddr := normalizeEmail(input.Email)
	password := strings.TrimSpace(input.Password)
	if fullName == "" || emailAddr == "" || password == "" ||
		strings.TrimSpace(input.EducationStage) == "" || strings.TrimSpace(input.WeeklyStudyHours) == "" {
		return domain.User{}, ErrMissingFields
	}

	stage, ok := domain.ParseEducationStage(input.EducationStage)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: education stage %q", ErrInvalidInput, input.EducationStage)
	}
	pace, ok := domain.ParseStudyPace(input.WeeklyStudyHours)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: weekly study hours %q", ErrInvalidInput, input.WeeklyStudyHours)
	}

	if _, err := s.users.GetByEmail(ctx, emailAddr); err == nil {
		return domain.User{}, ErrUserExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:               uuid.NewString(),
		FullName:         fullName,
		Email:            emailAddr,
		PasswordHash:     string(hash),
		EducationStage:   stage,
		WeeklyStudyHours: pace,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	// Los datos académicos dependen de la etapa: materias en etapa escolar, carrera en grado.
	if stage.IsSchool() {
		user.Subjects = cleanSubjects(input.Subjects)
	} else {
		user.Degree = strings.TrimSpace(input.Degree)
		user.Major = strings.TrimSpace(input.Major)
		user.CGPARange = strings.TrimSpace(input.CGPARange)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("education_stage", string(stage)))
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if !s.limiter.Allow(ctx, emailAddr) {
		s.logger.Warn("login throttled", zap.String("email", emailAddr))
		return domain.User{}, ErrRateLimited
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func cleanSubjects(in []domain.Subject) []domain.Subject {
	out := make([]domain.Subject, 0, len(in))
	for _, subject := range in {
		name := strings.TrimSpace(subject.Name)
		if name == "" {
			continue
		}
		out = append(out, domain.Subject{Name: name, Grade: strings.TrimSpace(subject.Grade)})
	}
	return out
}
