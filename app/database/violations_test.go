package database

import "testing"

func TestWithLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		limit     int
		args      []interface{}
		wantQuery string
		wantArgs  int
	}{
		{
			name:      "no existing args",
			query:     "SELECT 1",
			limit:     100,
			args:      nil,
			wantQuery: "SELECT 1 LIMIT $1",
			wantArgs:  1,
		},
		{
			name:      "placeholder numbered after existing args",
			query:     "SELECT 1 WHERE user_id = $1",
			limit:     50,
			args:      []interface{}{7},
			wantQuery: "SELECT 1 WHERE user_id = $1 LIMIT $2",
			wantArgs:  2,
		},
		{
			name:      "zero means no limit",
			query:     "SELECT 1 WHERE user_id = $1",
			limit:     0,
			args:      []interface{}{7},
			wantQuery: "SELECT 1 WHERE user_id = $1",
			wantArgs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := withLimit(tt.query, tt.limit, tt.args)
			if query != tt.wantQuery {
				t.Errorf("query = %q, want %q", query, tt.wantQuery)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("got %d args, want %d", len(args), tt.wantArgs)
			}
			if tt.limit > 0 && args[len(args)-1] != tt.limit {
				t.Errorf("last arg = %v, want limit %d", args[len(args)-1], tt.limit)
			}
		})
	}
}
