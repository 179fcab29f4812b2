package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"autorent/internal/models"
	"autorent/internal/repositories/interfaces"
	"autorent/internal/utils"
	"autorent/pkg/logger"
	"autorent/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileService owns the rental-side user profile and its avatar.
type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, email, phoneNumber string) (*models.UserProfile, error)
	UploadAvatar(ctx context.Context, userID primitive.ObjectID, reader io.Reader, filename string) (string, error)
	RemoveAvatar(ctx context.Context, userID primitive.ObjectID) error
	AvatarURL(ctx context.Context, profile *models.UserProfile) (string, error)
}

type profileService struct {
	profileRepo interfaces.ProfileRepository
	storage     storage.Provider
	logger      *logger.Logger
}

func NewProfileService(profileRepo interfaces.ProfileRepository, storageProvider storage.Provider, log *logger.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		storage:     storageProvider,
		logger:      log,
	}
}

// GetProfile returns the profile, creating an empty one on first access.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.UserProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	profile = &models.UserProfile{UserID: userID}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, email, phoneNumber string) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if email != "" {
		updates["email"] = email
		profile.Email = email
	}
	if phoneNumber != "" {
		updates["phone_number"] = phoneNumber
		profile.PhoneNumber = phoneNumber
	}
	if len(updates) == 0 {
		return profile, nil
	}

	if err := s.profileRepo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, userID primitive.ObjectID, reader io.Reader, filename string) (string, error) {
	if !utils.IsValidImageFormat(filename) {
		return "", fmt.Errorf("unsupported image format: %s", filename)
	}

	data, contentType, err := utils.ResizeImageToBytes(reader, filename, utils.AvatarMaxWidth, utils.AvatarMaxHeight)
	if err != nil {
		return "", fmt.Errorf("failed to process avatar: %w", err)
	}

	key := fmt.Sprintf("avatars/%s%s", userID.Hex(), extensionFor(contentType))
	_, err = s.storage.Upload(ctx, &storage.UploadRequest{
		Key:         key,
		Reader:      bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	if _, err := s.GetProfile(ctx, userID); err != nil {
		return "", err
	}
	if err := s.profileRepo.Update(ctx, userID, map[string]interface{}{"avatar_key": key}); err != nil {
		return "", err
	}

	s.logger.WithUserID(userID).Info("avatar updated")
	return key, nil
}

// RemoveAvatar deletes the stored image and clears the profile key.
func (s *profileService) RemoveAvatar(ctx context.Context, userID primitive.ObjectID) error {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if profile.AvatarKey == "" {
		return nil
	}

	if err := s.storage.Delete(ctx, profile.AvatarKey); err != nil {
		s.logger.WithUserID(userID).WithError(err).Warn("failed to delete avatar from storage")
	}
	if err := s.profileRepo.Update(ctx, userID, map[string]interface{}{"avatar_key": ""}); err != nil {
		return err
	}

	s.logger.WithUserID(userID).Info("avatar removed")
	return nil
}

func (s *profileService) AvatarURL(ctx context.Context, profile *models.UserProfile) (string, error) {
	if profile.AvatarKey == "" {
		return "", nil
	}
	return s.storage.GetURL(ctx, profile.AvatarKey, 1*time.Hour)
}
