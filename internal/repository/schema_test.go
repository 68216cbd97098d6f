package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ddlColumns extracts the column names of one CREATE TABLE block in the DDL.
func ddlColumns(t *testing.T, ddl, table string) map[string]bool {
	t.Helper()

	marker := "CREATE TABLE " + table + " ("
	start := strings.Index(ddl, marker)
	require.GreaterOrEqual(t, start, 0, "no CREATE TABLE block for %s", table)

	block := ddl[start+len(marker):]
	end := strings.Index(block, ");")
	require.GreaterOrEqual(t, end, 0, "unterminated CREATE TABLE block for %s", table)

	cols := make(map[string]bool)
	for _, line := range strings.Split(block[:end], "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "UNIQUE", "PRIMARY", "FOREIGN", "CONSTRAINT", "CHECK":
			continue
		}
		cols[fields[0]] = true
	}
	return cols
}

// Every column a repository selects must exist in schema.sql, otherwise the
// queries fail at runtime against a database created from the shipped DDL.
func TestRepositoryColumnsExistInSchema(t *testing.T) {
	raw, err := os.ReadFile("../../schema.sql")
	require.NoError(t, err)
	ddl := string(raw)

	cases := []struct {
		table   string
		columns string
	}{
		{"users", userColumns},
		{"businesses", businessColumns},
		{"social_accounts", socialAccountColumns},
		{"mentions", mentionColumns},
		{"generated_posts", generatedPostColumns},
		{"scheduled_posts", scheduledPostColumns},
	}

	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			cols := ddlColumns(t, ddl, tc.table)
			for _, c := range strings.Split(tc.columns, ",") {
				name := strings.TrimSpace(c)
				require.Truef(t, cols[name], "repository selects %q but the %s DDL has no such column", name, tc.table)
			}
		})
	}
}
