package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithForeignKeys(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "social_network.db", want: "social_network.db?_foreign_keys=on"},
		{dsn: ":memory:", want: ":memory:?_foreign_keys=on"},
		{dsn: "file:data/sn.db?cache=shared", want: "file:data/sn.db?cache=shared&_foreign_keys=on"},
		{dsn: "sn.db?_foreign_keys=off", want: "sn.db?_foreign_keys=off"},
		{dsn: "sn.db?_fk=1", want: "sn.db?_fk=1"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, withForeignKeys(tt.dsn))
		})
	}
}

func TestSQLiteFilePath(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "social_network.db", want: "social_network.db"},
		{dsn: "data/sn.db?_foreign_keys=on", want: "data/sn.db"},
		{dsn: "file:data/sn.db?cache=shared", want: "data/sn.db"},
		{dsn: ":memory:", want: ""},
		{dsn: "file::memory:?cache=shared", want: ""},
		{dsn: "file:sn?mode=memory&cache=shared", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteFilePath(tt.dsn))
		})
	}
}
