package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"social-network/internal/model"
)

type userLister interface {
	ListAll(ctx context.Context) ([]model.User, error)
}

type statusCounter interface {
	CountByUser(ctx context.Context) (map[string]int64, error)
}

// ReportService builds plain-text summaries of what is stored.
type ReportService struct {
	users    userLister
	statuses statusCounter
}

func NewReportService(users userLister, statuses statusCounter) *ReportService {
	return &ReportService{users: users, statuses: statuses}
}

func (s *ReportService) Summary(ctx context.Context, now time.Time) (string, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("list users: %w", err)
	}
	counts, err := s.statuses.CountByUser(ctx)
	if err != nil {
		return "", fmt.Errorf("count statuses: %w", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	var builder strings.Builder
	builder.WriteString("Social network report\n")
	builder.WriteString(fmt.Sprintf("Generated %s\n\n", now.Format("2006-01-02 15:04")))
	builder.WriteString(fmt.Sprintf("Users: %d\n", len(users)))
	builder.WriteString(fmt.Sprintf("Statuses: %d\n", total))

	if len(users) == 0 {
		builder.WriteString("\n- no users yet\n")
	} else {
		builder.WriteByte('\n')
		for _, user := range users {
			builder.WriteString(formatUser(user, counts[user.UserID]))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatUser(user model.User, statuses int64) string {
	name := strings.TrimSpace(user.Name + " " + user.LastName)
	if name == "" {
		name = "(no name)"
	}
	noun := "statuses"
	if statuses == 1 {
		noun = "status"
	}
	return fmt.Sprintf("%s  %s <%s>  %d %s\n", user.UserID, name, user.Email, statuses, noun)
}
