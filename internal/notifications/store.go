package notifications

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrInvalidNotification = errors.New("notifications: invalid notification")
	ErrNotificationExists  = errors.New("notifications: notification already exists")
)

// Notification is one unread item for a member.
type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Component string `json:"component"`
	Action    string `json:"action"`
	Content   string `json:"content"`
	Href      string `json:"href"`
}

// Store returns a member's unread notifications, oldest first.
type Store interface {
	Unread(userID int64) ([]Notification, error)
}

// MemoryStore keeps notifications in process.
type MemoryStore struct {
	mu     sync.RWMutex
	ids    map[int64]bool
	byUser map[int64][]Notification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ids:    make(map[int64]bool),
		byUser: make(map[int64][]Notification),
	}
}

func (s *MemoryStore) Add(n Notification) error {
	if n.ID <= 0 || n.UserID <= 0 {
		return fmt.Errorf("%w: id and user_id are required", ErrInvalidNotification)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[n.ID] {
		return fmt.Errorf("%w: id=%d", ErrNotificationExists, n.ID)
	}
	s.ids[n.ID] = true
	list := append(s.byUser[n.UserID], n)
	sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	s.byUser[n.UserID] = list
	return nil
}

// MarkRead drops id from the unread set.
func (s *MemoryStore) MarkRead(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ids[id] {
		return false
	}
	delete(s.ids, id)
	for uid, list := range s.byUser {
		for i, n := range list {
			if n.ID == id {
				s.byUser[uid] = append(list[:i:i], list[i+1:]...)
				return true
			}
		}
	}
	return true
}

func (s *MemoryStore) Unread(userID int64) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Notification(nil), s.byUser[userID]...), nil
}
