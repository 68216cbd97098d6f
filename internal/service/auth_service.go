package service

import (
	"context"
	"errors"
	"log/slog"

	config "github.com/maheshrc27/brandpulse/configs"
	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2v2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type AuthService interface {
	LoginURL(state string) string
	LoginCallback(ctx context.Context, code string) (int64, error)
}

type authService struct {
	cfg config.Config
	u   repository.UserRepository
	b   repository.BusinessRepository
}

func NewAuthService(cfg config.Config, u repository.UserRepository, b repository.BusinessRepository) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
		b:   b,
	}
}

func (s *authService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

func (s *authService) LoginURL(state string) string {
	return s.oauthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// LoginCallback exchanges the OAuth code, resolves the Google profile and
// returns the local user id, creating the user and a starter-tier business
// on first login.
func (s *authService) LoginCallback(ctx context.Context, code string) (int64, error) {
	if code == "" {
		err := errors.New("code is empty")
		slog.Info(err.Error())
		return 0, err
	}

	oauthCfg := s.oauthConfig()
	if oauthCfg.ClientID == "" || oauthCfg.ClientSecret == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return 0, err
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	svc, err := oauth2v2.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	userInfo, err := svc.Userinfo.Get().Do()
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	user, isExist, err := s.u.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return 0, err
	}

	var userID int64
	if !isExist {
		userID, err = s.u.Create(ctx, nil, &models.User{
			GoogleID:       userInfo.Id,
			Email:          userInfo.Email,
			Name:           userInfo.Name,
			ProfilePicture: userInfo.Picture,
		})
		if err != nil {
			slog.Info(err.Error())
			return 0, err
		}
	} else {
		userID = user.ID
	}

	// Every user gets exactly one business row; created on first login.
	_, hasBusiness, err := s.b.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if !hasBusiness {
		_, err = s.b.Create(ctx, nil, &models.Business{
			UserID:             userID,
			Name:               userInfo.Name,
			SubscriptionTier:   models.TierStarter,
			SubscriptionStatus: models.SubscriptionActive,
		})
		if err != nil {
			slog.Info(err.Error())
			return 0, err
		}
	}

	return userID, nil
}
