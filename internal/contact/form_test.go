package contact_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/uneclaire/internal/contact"
	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger.WithField("component", "test")
}

func TestSubmit_CompletesAfterDelay(t *testing.T) {
	done := make(chan contact.Receipt, 1)
	form := contact.NewForm(func(r contact.Receipt) { done <- r },
		contact.WithDelay(10*time.Millisecond),
		contact.WithLogger(loggerForTests()),
	)

	require.NoError(t, form.Submit("Maria Santos", "maria@example.com", "Do you deliver on Sundays?"))
	require.True(t, form.Sending())

	select {
	case receipt := <-done:
		require.NotEmpty(t, receipt.ID)
		require.Equal(t, "Maria Santos", receipt.Name)
		require.Contains(t, receipt.Acknowledgement(), "maria@example.com")
		require.False(t, receipt.SentAt.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("send did not complete")
	}

	require.Eventually(t, func() bool { return !form.Sending() }, time.Second, 5*time.Millisecond)
}

func TestSubmit_MissingFieldsRejected(t *testing.T) {
	form := contact.NewForm(nil, contact.WithDelay(time.Millisecond), contact.WithLogger(loggerForTests()))

	for _, tc := range [][3]string{
		{"", "maria@example.com", "hello"},
		{"Maria Santos", "", "hello"},
		{"Maria Santos", "maria@example.com", "   "},
	} {
		err := form.Submit(tc[0], tc[1], tc[2])
		require.ErrorIs(t, err, domain.ErrContactFieldsRequired)
	}
	require.False(t, form.Sending())
}

func TestSubmit_BusyWhileSending(t *testing.T) {
	done := make(chan contact.Receipt, 2)
	form := contact.NewForm(func(r contact.Receipt) { done <- r },
		contact.WithDelay(50*time.Millisecond),
		contact.WithLogger(loggerForTests()),
	)

	require.NoError(t, form.Submit("Maria Santos", "maria@example.com", "first"))
	// Пока идёт отправка, форма заблокирована — как задизейбленная кнопка.
	err := form.Submit("Maria Santos", "maria@example.com", "second")
	require.ErrorIs(t, err, domain.ErrSendInProgress)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("send did not complete")
	}

	// После завершения форма снова доступна.
	require.Eventually(t, func() bool {
		return form.Submit("Maria Santos", "maria@example.com", "third") == nil
	}, time.Second, 5*time.Millisecond)
}
