package services

import (
	"testing"

	"github.com/Xebarter/Manziz/apperr"
	"github.com/Xebarter/Manziz/entity"
	"github.com/Xebarter/Manziz/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageService(t *testing.T, db *gorm.DB) *MessageService {
	t.Helper()
	return NewMessageService(repository.NewMessageRepository(db), nil)
}

func TestSendCustomerMessage(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db)

	m, err := svc.SendCustomer("  is the terrace open tonight?  ", "Okello Sam", "sam@example.com", "0784811208")
	require.NoError(t, err)
	assert.Equal(t, entity.SenderCustomer, m.Sender)
	assert.Equal(t, "is the terrace open tonight?", m.Body)
	assert.Equal(t, "Okello Sam", m.CustomerName)
	assert.False(t, m.IsRead)
}

func TestSendEmptyMessageRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db)

	_, err := svc.SendCustomer("   ", "", "", "")
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.SendAdmin("", nil)
	require.ErrorAs(t, err, &vErr)
}

func TestAdminReplyReferencesOriginal(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db)

	orig, err := svc.SendCustomer("do you deliver to Ntinda?", "", "", "")
	require.NoError(t, err)

	reply, err := svc.SendAdmin("yes, every day until 10pm", &orig.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SenderAdmin, reply.Sender)
	require.NotNil(t, reply.ReplyTo)
	assert.Equal(t, orig.ID, *reply.ReplyTo)
}

func TestMarkReadIsOneWay(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db)

	m, err := svc.SendCustomer("hello", "", "", "")
	require.NoError(t, err)

	read, err := svc.MarkRead(m.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	// Marking again stays read.
	read, err = svc.MarkRead(m.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	_, err = svc.MarkRead("missing")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUnreadCountCountsCustomerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newMessageService(t, db)

	a, err := svc.SendCustomer("one", "", "", "")
	require.NoError(t, err)
	_, err = svc.SendCustomer("two", "", "", "")
	require.NoError(t, err)
	_, err = svc.SendAdmin("admin note", nil)
	require.NoError(t, err)

	n, err := svc.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = svc.MarkRead(a.ID)
	require.NoError(t, err)

	n, err = svc.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
