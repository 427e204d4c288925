package consultation

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrServiceNameTooLong = errors.New("service name is too long (max 255 characters)")
	ErrNegativeDeposit    = errors.New("service deposit cannot be negative")
	ErrServiceDisabled    = errors.New("service is disabled")
)

const MaxServiceNameLength = 255

// Service is a bookable consultation type (styling session, tailoring
// fitting, wine advisory). Admin-managed; the booking flow only reads it.
type Service struct {
	id           uuid.UUID
	name         string
	depositCents int64
	enabled      bool
}

func NewService(id uuid.UUID, name string, depositCents int64, enabled bool) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return nil, ErrServiceNameTooLong
	}
	if depositCents < 0 {
		return nil, ErrNegativeDeposit
	}

	return &Service{
		id:           id,
		name:         name,
		depositCents: depositCents,
		enabled:      enabled,
	}, nil
}

func (s *Service) ValidateBookable() error {
	if !s.enabled {
		return ErrServiceDisabled
	}
	return nil
}

func (s *Service) ID() uuid.UUID       { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) DepositCents() int64 { return s.depositCents }
func (s *Service) Enabled() bool       { return s.enabled }
