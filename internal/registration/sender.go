package registration

import (
	"context"

	"go.uber.org/zap"
)

// Sender delivers a one time code to a phone number.
//
//go:generate mockgen -source=sender.go -destination=mocks/sender/mock.go -package=mocksender
type Sender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

type logSender struct {
	logger *zap.Logger
}

// NewLogSender only logs the code. Nothing leaves the process.
func NewLogSender(logger *zap.Logger) *logSender {
	return &logSender{logger: logger}
}

func (s *logSender) SendOTP(ctx context.Context, phone, code string) error {
	s.logger.Info("otp dispatched", zap.String("phone", phone), zap.String("code", code))

	return nil
}
