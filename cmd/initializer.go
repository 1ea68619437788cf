package main

import (
	"database/sql"
	"log"

	"estateBack/internal/config"
	"estateBack/internal/handlers"
	"estateBack/internal/repositories"
	"estateBack/internal/services"
	"estateBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      *config.Config

	tokenManager *utils.Manager

	userRepo *repositories.UserRepository

	userHandler     *handlers.UserHandler
	propertyHandler *handlers.PropertyHandler
	favoriteHandler *handlers.FavoriteHandler
}

func initializeApp(cfg *config.Config, db *sql.DB, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		return nil, err
	}

	storage, err := utils.NewStorage(utils.StorageConfig{
		Endpoint:  cfg.Storage.Endpoint,
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		PublicURL: cfg.Storage.PublicURL,
	})
	if err != nil {
		return nil, err
	}

	userRepo := &repositories.UserRepository{DB: db}
	propertyRepo := &repositories.PropertyRepository{DB: db}
	favoriteRepo := &repositories.FavoriteRepository{DB: db}

	userService := &services.UserService{UserRepo: userRepo, TokenManager: tokenManager}
	propertyService := &services.PropertyService{PropertyRepo: propertyRepo}
	favoriteService := &services.FavoriteService{FavoriteRepo: favoriteRepo}

	return &application{
		errorLog:     errorLog,
		infoLog:      infoLog,
		cfg:          cfg,
		tokenManager: tokenManager,
		userRepo:     userRepo,

		userHandler:     &handlers.UserHandler{Service: userService},
		propertyHandler: &handlers.PropertyHandler{Service: propertyService, Storage: storage},
		favoriteHandler: &handlers.FavoriteHandler{Service: favoriteService},
	}, nil
}
