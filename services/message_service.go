package services

import (
	"strings"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/realtime"
	"github.com/Xebarter/Manziz/repository"

	"github.com/google/uuid"
)

type MessageService struct {
	Repo *repository.MessageRepository
	Hub  *realtime.Hub
}

func NewMessageService(repo *repository.MessageRepository, hub *realtime.Hub) *MessageService {
	return &MessageService{Repo: repo, Hub: hub}
}

// SendCustomer stores a customer message with optional contact details and
// pushes it to the messages insert channel.
func (s *MessageService) SendCustomer(body, name, email, phone string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		v := apperr.NewValidation()
		v.Add("message", "message body is required")
		return nil, v
	}

	m := &entity.Message{
		ID:            uuid.NewString(),
		Sender:        entity.SenderCustomer,
		Body:          body,
		CustomerName:  strings.TrimSpace(name),
		CustomerEmail: strings.TrimSpace(email),
		CustomerPhone: strings.TrimSpace(phone),
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	s.publish(realtime.EventInsert, m)
	return m, nil
}

// SendAdmin stores an admin reply, optionally referencing the message it
// answers.
func (s *MessageService) SendAdmin(body string, replyTo *string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		v := apperr.NewValidation()
		v.Add("message", "message body is required")
		return nil, v
	}

	m := &entity.Message{
		ID:      uuid.NewString(),
		Sender:  entity.SenderAdmin,
		Body:    body,
		ReplyTo: replyTo,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	s.publish(realtime.EventInsert, m)
	return m, nil
}

func (s *MessageService) List() ([]entity.Message, error) {
	return s.Repo.List()
}

func (s *MessageService) MarkRead(id string) (*entity.Message, error) {
	m, err := s.Repo.MarkRead(id)
	if err != nil {
		return nil, err
	}
	s.publish(realtime.EventUpdate, m)
	return m, nil
}

func (s *MessageService) UnreadCount() (int64, error) {
	return s.Repo.UnreadCount()
}

func (s *MessageService) publish(event string, m *entity.Message) {
	if s.Hub != nil {
		s.Hub.Publish("messages", event, m)
	}
}
