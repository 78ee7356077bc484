package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Rev0212/meeting/internal/models"
	"github.com/Rev0212/meeting/internal/repo"
)

const sessionLifetime = 7 * 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (token string, expires time.Time, err error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	users repo.UserRepo
	sess  repo.SessionRepo
}

func NewAuthService(u repo.UserRepo, s repo.SessionRepo) AuthService {
	return &authService{users: u, sess: s}
}

func (a *authService) Register(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || !validEmail(email) || len(password) < 8 {
		return errors.New("invalid name, email or password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil { return err }
	_, err = a.users.Create(ctx, name, email, hash)
	return err
}

func (a *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, hash, err := a.users.GetByEmail(ctx, email)
	if err != nil { return "", time.Time{}, errors.New("invalid credentials") }
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return "", time.Time{}, errors.New("invalid credentials")
	}
	tok, err := randomToken(32)
	if err != nil { return "", time.Time{}, err }
	exp := time.Now().Add(sessionLifetime).UTC()
	if err := a.sess.Create(ctx, tok, u.ID, exp.Format(time.RFC3339)); err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" { return nil }
	return a.sess.Delete(ctx, token)
}

func (a *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" { return nil, errors.New("no token") }
	uid, expStr, err := a.sess.Lookup(ctx, token)
	if err != nil { return nil, errors.New("invalid session") }
	exp, err := time.Parse(time.RFC3339, expStr)
	if err != nil || time.Now().After(exp) {
		_ = a.sess.Delete(ctx, token)
		return nil, errors.New("expired session")
	}
	return a.users.GetByID(ctx, uid)
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil { return "", err }
	return hex.EncodeToString(b), nil
}

func validEmail(s string) bool { return strings.Contains(s, "@") && len(s) <= 255 }
