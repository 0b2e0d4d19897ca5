package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-network/internal/model"
)

type stubUsers struct {
	users []model.User
	err   error
}

func (s stubUsers) ListAll(context.Context) ([]model.User, error) { return s.users, s.err }

type stubCounts struct {
	counts map[string]int64
	err    error
}

func (s stubCounts) CountByUser(context.Context) (map[string]int64, error) { return s.counts, s.err }

func TestReportSummary(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)
	svc := NewReportService(
		stubUsers{users: []model.User{
			{UserID: "SC", Email: "sesame@uw.edu", Name: "Sesame", LastName: "Chan"},
			{UserID: "SF", Email: "safe@uw.edu", Name: "Sabrina", LastName: "Fechtner"},
			{UserID: "ZZ", Email: "zz@uw.edu"},
		}},
		stubCounts{counts: map[string]int64{"SF": 2, "SC": 1}},
	)

	got, err := svc.Summary(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, "Social network report\n"+
		"Generated 2024-07-01 09:30\n\n"+
		"Users: 3\n"+
		"Statuses: 3\n\n"+
		"SC  Sesame Chan <sesame@uw.edu>  1 status\n"+
		"SF  Sabrina Fechtner <safe@uw.edu>  2 statuses\n"+
		"ZZ  (no name) <zz@uw.edu>  0 statuses", got)
}

func TestReportSummaryEmpty(t *testing.T) {
	svc := NewReportService(stubUsers{}, stubCounts{counts: map[string]int64{}})

	got, err := svc.Summary(context.Background(), time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, got, "Users: 0")
	assert.Contains(t, got, "- no users yet")
}

func TestReportSummaryErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewReportService(stubUsers{err: boom}, stubCounts{}).Summary(context.Background(), time.Now())
	assert.ErrorIs(t, err, boom)

	_, err = NewReportService(stubUsers{}, stubCounts{err: boom}).Summary(context.Background(), time.Now())
	assert.ErrorIs(t, err, boom)
}
