package test

import (
	"testing"
	"time"

	"vellumBackend/auth"
	"vellumBackend/config"
	"vellumBackend/domain/collection"
	"vellumBackend/domain/permission"
	"vellumBackend/domain/record"
	"vellumBackend/domain/role"
	"vellumBackend/domain/user"
	"vellumBackend/storage"
	"vellumBackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Fixed ids so tests can address the seeded data directly.
const (
	PostsCollectionId  = "11111111-1111-1111-1111-111111111111"
	PagesCollectionId  = "22222222-2222-2222-2222-222222222222"
	LegacyCollectionId = "33333333-3333-3333-3333-333333333333"
	EditorRoleId       = "44444444-4444-4444-4444-444444444444"
	ReviewerRoleId     = "55555555-5555-5555-5555-555555555555"
	AdminRoleId        = "66666666-6666-6666-6666-666666666666"
	ViewerRoleId       = "77777777-7777-7777-7777-777777777777"
)

func GenerateTestData(db *gorm.DB) {
	db.Exec("DROP TABLE IF EXISTS posts")
	db.Exec("DROP TABLE IF EXISTS pages")

	err := db.AutoMigrate(
		&user.User{},
		&role.Role{},
		&collection.Collection{},
		&collection.Field{},
		&permission.Permission{},
	)
	if err != nil {
		panic("Failed to migrate test database")
	}

	mayaUser := user.User{
		UUID:  utils.GenerateUuid(),
		Sub:   "maya",
		Name:  "Maya Kessler",
		Email: "maya@example.com",
	}
	db.Create(&mayaUser)

	db.Create(&role.Role{
		UUID:        AdminRoleId,
		Name:        "admin",
		DisplayName: "Admin",
	})

	// The editor role has a member so it cannot be deleted
	db.Create(&role.Role{
		UUID:        EditorRoleId,
		Name:        "editor",
		DisplayName: "Editor",
		Users:       []user.User{mayaUser},
	})

	db.Create(&role.Role{
		UUID:        ViewerRoleId,
		Name:        "viewer",
		DisplayName: "Viewer",
	})

	db.Create(&role.Role{
		UUID:        ReviewerRoleId,
		Name:        "reviewer",
		DisplayName: "Reviewer",
	})

	db.Create(&collection.Collection{
		UUID:        PostsCollectionId,
		Name:        "posts",
		DisplayName: "Blog Posts",
		TableName:   "posts",
		Status:      collection.StatusActive,
		Fields: []collection.Field{
			{UUID: utils.GenerateUuid(), Name: "title", DbColumn: "title", Type: collection.FieldTypeText, Required: true},
			{UUID: utils.GenerateUuid(), Name: "body", DbColumn: "body", Type: collection.FieldTypeText},
			{UUID: utils.GenerateUuid(), Name: "published", DbColumn: "published", Type: collection.FieldTypeBoolean},
			{UUID: utils.GenerateUuid(), Name: "cover", DbColumn: "cover", Type: collection.FieldTypeFile},
		},
	})

	// The pages collection has no registered fields and stays schema-free
	db.Create(&collection.Collection{
		UUID:        PagesCollectionId,
		Name:        "pages",
		DisplayName: "Pages",
		TableName:   "pages",
		Status:      collection.StatusActive,
	})

	db.Create(&collection.Collection{
		UUID:        LegacyCollectionId,
		Name:        "legacy",
		DisplayName: "Legacy Content",
		TableName:   "legacy",
		Status:      collection.StatusArchived,
	})

	// Physical tables are provisioned out-of-band in production; the
	// test harness plays that part here.
	db.Exec(`CREATE TABLE posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		body TEXT,
		published BOOLEAN,
		cover TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`)
	db.Exec(`CREATE TABLE pages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		slug TEXT,
		content TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`)

	seedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"First post", "Second post", "Third post"} {
		db.Exec(
			`INSERT INTO posts (title, body, published, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			title, "Seeded content", i%2 == 0, seedTime.Add(time.Duration(i)*time.Hour), seedTime.Add(time.Duration(i)*time.Hour),
		)
	}
}

func SetupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	return SetupTestServerWithUser(t, auth.AuthenticatedUser{
		UserId:  "test-admin-id",
		IsAdmin: true,
		Roles:   []string{"admin"},
	})
}

func SetupTestServerWithUser(t *testing.T, authUser auth.AuthenticatedUser) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %s", err.Error())
	}

	GenerateTestData(db)

	testConfig := &config.VellumConfig{
		FileSystem: config.FilesystemConfig{
			Storage: t.TempDir(),
			Archive: t.TempDir(),
		},
	}

	authManager := MockAuthManager{User: authUser}
	storageManager := storage.CreateStorageManager(testConfig)

	var (
		userRepository = user.CreateRepository(db)
		userService    = user.CreateService(userRepository, authManager, testConfig)
		userHandler    = user.CreateHandler(userService)

		collectionRepository = collection.CreateRepository(db)
		collectionService    = collection.CreateService(collectionRepository, storageManager)
		collectionHandler    = collection.CreateHandler(collectionService)

		roleRepository = role.CreateRepository(db)
		roleService    = role.CreateService(roleRepository)
		roleHandler    = role.CreateHandler(roleService)

		permissionRepository = permission.CreateRepository(db)
		permissionService    = permission.CreateService(permissionRepository, roleRepository, collectionRepository)
		permissionHandler    = permission.CreateHandler(permissionService)

		recordRepository = record.CreateRepository(db)
		recordService    = record.CreateService(recordRepository, collectionRepository, storageManager)
		recordHandler    = record.CreateHandler(recordService)
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	user.RegisterRoutes(router, userHandler)
	record.RegisterRoutes(router, recordHandler)
	role.RegisterRoutes(router, roleHandler, authManager)
	permission.RegisterRoutes(router, permissionHandler, authManager)
	collection.RegisterRoutes(router, collectionHandler, authManager)

	return router, db
}
