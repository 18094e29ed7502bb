package infrastructure

import (
	"context"
	"testing"
	"time"

	"relivo-backend/dal"
	"relivo-backend/models"
	"relivo-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SchemaTestSuite struct {
	suite.Suite
	client *dal.Client
	schema *Schema
	ctx    context.Context
}

func (s *SchemaTestSuite) SetupTest() {
	log := logger.NewLogger("error", "text")
	cfg := &models.Config{
		DatabaseURL:     ":memory:",
		DatabaseDialect: "sqlite",
	}

	client, err := dal.NewClient(cfg, log)
	require.NoError(s.T(), err)

	s.client = client
	s.schema = NewSchema(client, log)
	s.ctx = context.Background()
}

func (s *SchemaTestSuite) TearDownTest() {
	s.client.Close()
}

func TestSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}

func (s *SchemaTestSuite) TestSetupIsIdempotent() {
	require.NoError(s.T(), s.schema.Setup(s.ctx))

	// Running the whole bootstrap again must be a no-op
	require.NoError(s.T(), s.schema.Setup(s.ctx))
	require.NoError(s.T(), s.schema.RunMigrations(s.ctx))
}

func (s *SchemaTestSuite) TestMigratedColumnsExist() {
	require.NoError(s.T(), s.schema.Setup(s.ctx))

	for _, m := range columnMigrations {
		exists, err := s.schema.columnExists(s.ctx, s.client.DB(), m.Table, m.Column)
		require.NoError(s.T(), err)
		assert.True(s.T(), exists, "expected column %s.%s", m.Table, m.Column)
	}
}

func (s *SchemaTestSuite) TestTablesAcceptRows() {
	require.NoError(s.T(), s.schema.Setup(s.ctx))

	user := &models.User{
		ID:           "11111111-1111-1111-1111-111111111111",
		Email:        "anna@example.com",
		PasswordHash: "hash",
		Role:         models.UserRoleApplicant,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.client.DB().NewInsert().Model(user).Exec(s.ctx)
	require.NoError(s.T(), err)

	org := &models.Organization{
		UserID:    user.ID,
		Name:      "Helping Hands",
		Status:    models.OrganizationStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.client.DB().NewInsert().Model(org).Exec(s.ctx)
	require.NoError(s.T(), err)
}

func (s *SchemaTestSuite) TestBackfillGrantDeadlines() {
	require.NoError(s.T(), s.schema.Setup(s.ctx))

	grant := &models.Grant{
		Title:     "Community Fund",
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.client.DB().NewInsert().Model(grant).Exec(s.ctx)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.schema.RunMigrations(s.ctx))

	var got models.Grant
	err = s.client.DB().NewSelect().Model(&got).Where("id = ?", grant.ID).Scan(s.ctx)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got.Deadline)
	assert.True(s.T(), got.Deadline.After(time.Now().UTC().AddDate(0, 0, 29)))
}
