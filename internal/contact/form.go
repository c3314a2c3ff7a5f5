package contact

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
)

const defaultSendDelay = 1500 * time.Millisecond

// Receipt подтверждает "отправленное" сообщение контактной формы.
type Receipt struct {
	ID      string
	Name    string
	Email   string
	Message string
	SentAt  time.Time
}

// Acknowledgement возвращает текст благодарности для показа пользователю.
func (r Receipt) Acknowledgement() string {
	return fmt.Sprintf("Thank you for your message, %s! We will respond to %s shortly.", r.Name, r.Email)
}

// Options задаёт параметры контактной формы.
type Options struct {
	Logger *log.Entry
	Delay  time.Duration
}

// Option настраивает Form.
type Option func(*Options)

// WithLogger задаёт logger формы.
func WithLogger(logger *log.Entry) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithDelay задаёт задержку имитации отправки.
func WithDelay(delay time.Duration) Option {
	return func(opts *Options) {
		opts.Delay = delay
	}
}

// Form имитирует отправку сообщения из контактной формы исходного виджета:
// после Submit форма блокируется на фиксированную задержку, затем
// безусловно завершает отправку успехом. Отмены и таймаута отказа нет —
// имитируется сетевая задержка без сетевой неопределённости.
type Form struct {
	mu      sync.Mutex
	sending bool
	logger  *log.Entry
	delay   time.Duration
	onDone  func(Receipt)
}

// NewForm создаёт контактную форму; onDone вызывается по завершении каждой
// отправки с квитанцией сообщения.
func NewForm(onDone func(Receipt), options ...Option) *Form {
	opts := Options{Delay: defaultSendDelay}
	for _, option := range options {
		option(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "contact-form")
	}
	if opts.Delay <= 0 {
		opts.Delay = defaultSendDelay
	}
	if onDone == nil {
		onDone = func(Receipt) {}
	}

	return &Form{
		logger: logger,
		delay:  opts.Delay,
		onDone: onDone,
	}
}

// Submit принимает сообщение. Все поля обязательны; пока предыдущая отправка
// не завершилась, форма занята и возвращает ErrSendInProgress.
func (f *Form) Submit(name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return domain.ErrContactFieldsRequired
	}

	f.mu.Lock()
	if f.sending {
		f.mu.Unlock()
		return domain.ErrSendInProgress
	}
	f.sending = true
	f.mu.Unlock()

	receipt := Receipt{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: message,
	}

	f.logger.WithField("receipt_id", receipt.ID).Debug("contact message queued")

	time.AfterFunc(f.delay, func() {
		receipt.SentAt = time.Now()

		f.mu.Lock()
		f.sending = false
		f.mu.Unlock()

		f.onDone(receipt)
		f.logger.WithField("receipt_id", receipt.ID).Info("contact message sent")
	})

	return nil
}

// Sending сообщает, занята ли форма текущей отправкой.
func (f *Form) Sending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sending
}
