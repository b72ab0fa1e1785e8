package usershandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inspection-tools-backend/db"
	usersstore "inspection-tools-backend/lib/users/store"
	authutils "inspection-tools-backend/lib/utils/auth-utils"
	"inspection-tools-backend/models"
	authapimodels "inspection-tools-backend/models/api/auth"
	dbmodels "inspection-tools-backend/models/db"
)

type Provider interface {
	Register(data authapimodels.RegisterData) (view authapimodels.UserView, err error)
	Login(data authapimodels.LoginData) (response authapimodels.JWTResponse, err error)
	GetByID(id string) (view authapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) Register(data authapimodels.RegisterData) (view authapimodels.UserView, err error) {
	logger := log.WithField("email", data.Email)
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check email uniqueness")
		return authapimodels.UserView{}, err
	}
	if exist {
		return authapimodels.UserView{}, errors.WithMessage(models.ErrConflict, "user with this email already exists")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		logger.WithError(err).Error("failed to hash password")
		return authapimodels.UserView{}, err
	}
	rec := dbmodels.User{
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: hash,
		Role:         data.Role,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create user")
		return authapimodels.UserView{}, err
	}
	rec.ID = id
	logger.WithField("role", data.Role).Info("user registered")
	return rec.ToModel(), nil
}

func (i impl) Login(data authapimodels.LoginData) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", data.Email)
	user, err := i.store.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("failed to look up user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !authutils.CheckPassword(user.PasswordHash, data.Password) {
		logger.Debug("login rejected")
		return authapimodels.JWTResponse{}, errors.WithMessage(models.ErrUnauthenticated, "invalid email or password")
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		logger.WithError(err).Error("failed to issue JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{Token: token}, nil
}

func (i impl) GetByID(id string) (view authapimodels.UserView, err error) {
	user, err := i.store.GetByID(id)
	if err != nil {
		return authapimodels.UserView{}, err
	}
	if user == nil {
		return authapimodels.UserView{}, errors.WithMessage(models.ErrNotFound, "user not found")
	}
	return user.ToModel(), nil
}
