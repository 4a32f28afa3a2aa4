package service

import (
	"context"

	"landing-builder-backend/pkg/logger"
)

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is the user-facing result of a load or save.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

func successNotice(message string) Notice {
	return Notice{Level: NoticeSuccess, Message: message}
}

func errorNotice(message string) Notice {
	return Notice{Level: NoticeError, Message: message}
}

// Notifier receives one notice per load and save.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

// LogNotifier writes notices to the application log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, notice Notice) {
	entry := logger.FromContext(ctx).WithField("notice_level", string(notice.Level))
	if notice.Level == NoticeError {
		entry.Warn(notice.Message)
		return
	}
	entry.Info(notice.Message)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notice) {}
