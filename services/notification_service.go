package services

import (
	"log"

	"toeat/entity"
	"toeat/repository"
)

// Publisher pushes a freshly created notification to connected clients.
// Delivery is best-effort; the persisted inbox is the source of truth.
type Publisher interface {
	Publish(n *entity.Notification)
}

type NotificationService struct {
	Repo      *repository.NotificationRepository
	publisher Publisher
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

// SetPublisher attaches the live feed; nil means inbox only.
func (s *NotificationService) SetPublisher(p Publisher) {
	s.publisher = p
}

// Create stamps the record unread, appends it to the inbox and, if a
// live feed is attached, fans it out.
func (s *NotificationService) Create(n *entity.Notification) (*entity.Notification, error) {
	n.ID = 0
	n.Read = false
	if err := s.Repo.Create(n); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.Publish(n)
	}
	return n, nil
}

// notify is the best-effort variant used for lifecycle side effects:
// a failed write is logged, never propagated.
func (s *NotificationService) notify(n *entity.Notification) {
	if _, err := s.Create(n); err != nil {
		log.Printf("notification %q dropped: %v", n.Type, err)
	}
}

func (s *NotificationService) ListFor(userID uint, role string) ([]entity.Notification, error) {
	return s.Repo.ListVisibleTo(userID, role, 0)
}

// MarkAllReadFor marks everything the user can currently see. Visibility
// is recomputed here, not cached, and the call is idempotent.
func (s *NotificationService) MarkAllReadFor(userID uint, role string) error {
	return s.Repo.MarkAllRead(userID, role)
}

func (s *NotificationService) UnreadCount(userID uint, role string) (int64, error) {
	return s.Repo.CountUnread(userID, role)
}
