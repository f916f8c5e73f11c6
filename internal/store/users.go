package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/matchpicks/supportbot/internal/bot"
	"github.com/matchpicks/supportbot/internal/models"
)

// Users persists the external-identity to country mapping. One row per
// external id; writes are upserts.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// UpsertCountry records a country selection. Identity fields are extracted
// from the update best-effort; when no external id or no valid country can be
// found the call is a no-op, not an error. On conflict the country always
// takes the new value, while username and chatroom id keep their previous
// value if the new one is absent.
func (s *Users) UpsertCountry(ctx context.Context, u *bot.Update, rawText string) error {
	country, ok := bot.NormalizeCountry(rawText)
	if !ok {
		return nil
	}
	externalID, ok := u.ExternalID()
	if !ok {
		return nil
	}

	user := models.User{
		ExternalID: externalID,
		Country:    &country,
	}
	if name, ok := u.SenderName(); ok {
		user.Username = &name
	}
	if chatID, ok := u.ChatID(); ok {
		chatroom := fmt.Sprintf("%d", chatID)
		user.ChatroomID = &chatroom
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"username":    gorm.Expr("COALESCE(excluded.username, users.username)"),
			"chatroom_id": gorm.Expr("COALESCE(excluded.chatroom_id, users.chatroom_id)"),
			"country":     gorm.Expr("excluded.country"),
			"updated_at":  gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&user).Error
	if err != nil {
		return fmt.Errorf("upsert country: %w", err)
	}
	return nil
}

// ListWithCountry returns users eligible for the daily push: a stored
// country and a reachable chatroom.
func (s *Users) ListWithCountry(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where("country IS NOT NULL AND chatroom_id IS NOT NULL").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
