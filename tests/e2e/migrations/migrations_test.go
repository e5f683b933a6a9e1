//go:build e2e

package migrations_test

import (
	"context"
	"testing"
	"testing/fstest"

	"dh-booking/migrations"
	"dh-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type MigrationsE2ETestSuite struct {
	e2e.SharedSuite
}

func TestMigrationsE2E(t *testing.T) {
	suite.Run(t, new(MigrationsE2ETestSuite))
}

func (s *MigrationsE2ETestSuite) TearDownTest() {
	ctx := context.Background()
	_, err := s.DB.Exec(ctx, `DROP TABLE IF EXISTS mig_ok, mig_bad`)
	s.Require().NoError(err)
	_, err = s.DB.Exec(ctx, `DELETE FROM schema_migrations WHERE name LIKE '9%'`)
	s.Require().NoError(err)
}

func (s *MigrationsE2ETestSuite) applied(name string) bool {
	var ok bool
	err := s.DB.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&ok)
	s.Require().NoError(err)
	return ok
}

func (s *MigrationsE2ETestSuite) tableExists(name string) bool {
	var ok bool
	err := s.DB.QueryRow(context.Background(), `SELECT to_regclass($1) IS NOT NULL`, name).Scan(&ok)
	s.Require().NoError(err)
	return ok
}

func (s *MigrationsE2ETestSuite) TestFailingFileLeavesNoTrace() {
	ctx := context.Background()
	const failing = `
CREATE TABLE mig_bad (id INT PRIMARY KEY);
INSERT INTO mig_bad SELECT id FROM no_such_table;
`
	files := fstest.MapFS{
		"900_ok.sql":  {Data: []byte(`CREATE TABLE mig_ok (id INT PRIMARY KEY);`)},
		"901_bad.sql": {Data: []byte(failing)},
	}

	err := migrations.ApplyFS(ctx, s.DB, files)
	s.Require().Error(err)
	s.Contains(err.Error(), "901_bad.sql")

	s.True(s.applied("900_ok.sql"))
	s.True(s.tableExists("mig_ok"))
	s.False(s.applied("901_bad.sql"), "failed file is not recorded")
	s.False(s.tableExists("mig_bad"), "partial DDL is rolled back")

	s.Run("fixed file applies on the next run", func() {
		files["901_bad.sql"] = &fstest.MapFile{Data: []byte(`CREATE TABLE mig_bad (id INT PRIMARY KEY);`)}
		s.Require().NoError(migrations.ApplyFS(ctx, s.DB, files))
		s.True(s.applied("901_bad.sql"))
		s.True(s.tableExists("mig_bad"))
	})
}

func (s *MigrationsE2ETestSuite) TestEmbeddedSchemaIsIdempotent() {
	s.Require().NoError(migrations.Apply(context.Background(), s.DB))
	s.True(s.applied("001_initial_schema.sql"))
}
