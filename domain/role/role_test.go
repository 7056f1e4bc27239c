package role

import (
	"context"
	"net/http/httptest"
	"testing"

	"vellumBackend/domain/user"
	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (Service, Repository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&user.User{}, &Role{})
	require.NoError(t, err)

	repo := CreateRepository(db)
	service := CreateService(repo)

	return service, repo, db
}

func testContext() *gin.Context {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	return ctx
}

func attachUser(t *testing.T, db *gorm.DB, repo Repository, roleName string) {
	t.Helper()

	member := &user.User{
		UUID: utils.GenerateUuid(),
		Sub:  "test-sub",
		Name: "maya",
	}
	require.NoError(t, db.Create(member).Error)

	attached, exists, err := repo.GetByName(context.Background(), roleName)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, db.Model(attached).Association("Users").Append(member))
}

func TestSeedBuiltInRoles(t *testing.T) {
	_, repo, _ := setupService(t)

	for _, name := range BuiltInRoleNames {
		_, exists, err := repo.GetByName(context.Background(), name)
		assert.NoError(t, err)
		assert.True(t, exists, "role %s", name)
	}

	// Seeding again must not duplicate
	CreateService(repo)

	roles, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Len(t, roles, len(BuiltInRoleNames))
}

func TestCreateRole_NormalizesName(t *testing.T) {
	service, repo, _ := setupService(t)

	roleId, err := service.Create(testContext(), RoleIn{
		Name:        "Translator",
		DisplayName: "Translator",
	})
	require.NoError(t, err)

	created, err := repo.GetByUuid(context.Background(), roleId)
	require.NoError(t, err)
	assert.Equal(t, "translator", created.Name)
}

func TestCreateRole_DuplicateName(t *testing.T) {
	service, _, _ := setupService(t)

	// Differs only in case from the seeded built-in
	_, err := service.Create(testContext(), RoleIn{
		Name:        "Admin",
		DisplayName: "x",
	})

	assert.ErrorIs(t, err, utils.ErrorRoleExists)
}

func TestUpdateRole_Partial(t *testing.T) {
	service, repo, _ := setupService(t)

	roleId, err := service.Create(testContext(), RoleIn{
		Name:        "reviewer",
		DisplayName: "Reviewer",
	})
	require.NoError(t, err)

	displayName := "Content Reviewer"
	err = service.Update(testContext(), RoleUpdateIn{DisplayName: &displayName}, roleId)
	require.NoError(t, err)

	updated, err := repo.GetByUuid(context.Background(), roleId)
	require.NoError(t, err)
	assert.Equal(t, "Content Reviewer", updated.DisplayName)
	assert.Equal(t, "reviewer", updated.Name)
	assert.Nil(t, updated.Description)
}

func TestDeleteRole_InUse(t *testing.T) {
	service, repo, db := setupService(t)

	roleId, err := service.Create(testContext(), RoleIn{
		Name:        "reviewer",
		DisplayName: "Reviewer",
	})
	require.NoError(t, err)
	attachUser(t, db, repo, "reviewer")

	err = service.Delete(testContext(), roleId)

	assert.ErrorIs(t, err, utils.ErrorRoleInUse)
}

func TestDeleteRole_BuiltInInUse(t *testing.T) {
	service, repo, db := setupService(t)

	attachUser(t, db, repo, "admin")
	admin, _, err := repo.GetByName(context.Background(), "admin")
	require.NoError(t, err)

	err = service.Delete(testContext(), admin.UUID)

	assert.ErrorIs(t, err, utils.ErrorBuiltInRoleInUse)
}

func TestDeleteRole_EmptyBuiltIn(t *testing.T) {
	service, repo, _ := setupService(t)

	viewer, _, err := repo.GetByName(context.Background(), "viewer")
	require.NoError(t, err)

	// A built-in role without members deletes like any other role
	err = service.Delete(testContext(), viewer.UUID)
	require.NoError(t, err)

	_, exists, err := repo.GetByName(context.Background(), "viewer")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteRole_NameReusable(t *testing.T) {
	service, _, _ := setupService(t)

	roleId, err := service.Create(testContext(), RoleIn{
		Name:        "translator",
		DisplayName: "Translator",
	})
	require.NoError(t, err)

	err = service.Delete(testContext(), roleId)
	require.NoError(t, err)

	// The name is free again after deletion
	_, err = service.Create(testContext(), RoleIn{
		Name:        "translator",
		DisplayName: "Translator",
	})
	assert.NoError(t, err)
}

func TestDeleteRole_NotFound(t *testing.T) {
	service, _, _ := setupService(t)

	err := service.Delete(testContext(), "00000000-dead-beef-0000-000000000000")

	assert.ErrorIs(t, err, utils.ErrorUuidNotFound)
}
