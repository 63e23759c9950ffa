package store

import (
	"context"
	"testing"
)

func TestNewReportRepoRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := NewReportRepo(context.Background()); err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestNewReportRepoWithURLRejectsBadConnString(t *testing.T) {
	if _, err := NewReportRepoWithURL(context.Background(), "definitely not a dsn"); err == nil {
		t.Error("expected error for a malformed connection string")
	}
}
