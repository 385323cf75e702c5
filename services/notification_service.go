package services

import (
	"encoding/json"
	"log/slog"

	"campusfood/entity"
	"campusfood/repository"
)

// NotificationService writes in-app notification rows. Every call is
// best-effort: a failed notification is logged and never fails the order
// operation that triggered it.
type NotificationService struct {
	Repo       *repository.NotificationRepository
	VendorRepo *repository.VendorRepository
	Log        *slog.Logger
}

func NewNotificationService(repo *repository.NotificationRepository, vendors *repository.VendorRepository, log *slog.Logger) *NotificationService {
	return &NotificationService{Repo: repo, VendorRepo: vendors, Log: log}
}

func (s *NotificationService) OrderPlaced(o *entity.Order) {
	vendor, err := s.VendorRepo.GetByID(o.VendorID)
	if err != nil {
		s.Log.Warn("notify order placed: resolve vendor", "order_id", o.ID, "err", err)
		return
	}
	s.write(vendor.UserID, "order_placed", map[string]any{
		"order_id":      o.ID,
		"total_amount":  o.TotalAmount,
		"scheduled_for": o.ScheduledFor,
	})
}

func (s *NotificationService) StatusChanged(o *entity.Order, from entity.Status) {
	s.write(o.CustomerID, "order_status", map[string]any{
		"order_id":   o.ID,
		"old_status": from,
		"new_status": o.Status,
	})
}

func (s *NotificationService) write(userID uint, kind string, payload map[string]any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.Log.Warn("notify: marshal payload", "type", kind, "err", err)
		return
	}
	n := &entity.Notification{UserID: userID, Type: kind, Payload: string(raw)}
	if err := s.Repo.Create(n); err != nil {
		s.Log.Warn("notify: write", "type", kind, "user_id", userID, "err", err)
	}
}
