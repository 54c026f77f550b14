package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/dragonspin/dragonspin/internal/domain"
	"github.com/dragonspin/dragonspin/internal/pg"
	"github.com/dragonspin/dragonspin/internal/service/taskservice"
	"github.com/dragonspin/dragonspin/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// Issuer grants the sign-up and referral entitlements.
type Issuer interface {
	Grant(ctx context.Context, userID int, source domain.SourceKind, sourceRef int) (*domain.Entitlement, error)
}

// TaskGate receives the inviter's referral completion.
type TaskGate interface {
	RecordCompletion(ctx context.Context, userID int, method domain.CompletionMethod) (*taskservice.CompletionResult, error)
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	userRepo    Repo
	issuer      Issuer
	gate        TaskGate
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	txManager   pg.TXManager
}

func New(repo Repo, issuer Issuer, gate TaskGate, hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:    repo,
		issuer:      issuer,
		gate:        gate,
		hashService: hashService,
		jwtService:  jwtService,
		txManager:   txManager,
	}
}

// Register creates the user, grants the free first play and, when a valid
// invite code names an existing user, credits the inviter with a referral
// entitlement and a ladder completion.
func (s *Service) Register(ctx context.Context, login, password, inviteCode string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var newUser *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newUser, err = s.userRepo.Create(ctx, &domain.User{
			Login:        login,
			PasswordHash: hashedPassword,
		})
		if err != nil {
			return err
		}

		if _, err := s.issuer.Grant(ctx, newUser.ID, domain.SourceFirstPlay, newUser.ID); err != nil {
			return err
		}

		if inviteCode == "" {
			return nil
		}
		inviter, err := s.userRepo.FindByLogin(ctx, inviteCode)
		if err != nil {
			return err
		}
		if inviter == nil || inviter.ID == newUser.ID {
			zap.L().Info("invite code did not resolve", zap.String("code", inviteCode))
			return nil
		}
		if _, err := s.issuer.Grant(ctx, inviter.ID, domain.SourceInvite, newUser.ID); err != nil {
			return err
		}
		if _, err := s.gate.RecordCompletion(ctx, inviter.ID, domain.MethodInvite); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
