package main

import (
	"fmt"
	"os"
	"sync"

	"vellumBackend/auth"
	"vellumBackend/config"
	"vellumBackend/domain/collection"
	"vellumBackend/domain/permission"
	"vellumBackend/domain/record"
	"vellumBackend/domain/role"
	"vellumBackend/domain/user"
	"vellumBackend/storage"
	"vellumBackend/utils"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	cmdArgs := utils.ParseArguments()
	isDevMode := *cmdArgs.DevelopmentMode

	log.SetTimeFormat("[2006-01-02 15:04:05]")

	if isDevMode {
		log.SetReportCaller(true)
	}

	vellumConfig := config.Load(*cmdArgs.ConfigFile)
	authManager := auth.CreateAuthManager(vellumConfig)
	storageManager := storage.CreateStorageManager(vellumConfig)

	db := connectToDatabase(*cmdArgs.UseLocalDatabase, vellumConfig)
	migrateDatabase(db)

	var (
		userRepository = user.CreateRepository(db)
		userService    = user.CreateService(userRepository, authManager, vellumConfig)
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

	gin.SetMode(gin.ReleaseMode)
	webServer := gin.Default()

	// Public endpoints
	user.RegisterRoutes(webServer, userHandler)
	record.RegisterRoutes(webServer, recordHandler)

	// Authenticated endpoints
	role.RegisterRoutes(webServer, roleHandler, authManager)
	permission.RegisterRoutes(webServer, permissionHandler, authManager)
	collection.RegisterRoutes(webServer, collectionHandler, authManager)

	var serverWaitGroup sync.WaitGroup
	connection := fmt.Sprintf("%s:%d", vellumConfig.Server.Host, vellumConfig.Server.Port)

	serverWaitGroup.Add(1)
	go startWebServer(webServer, connection, &serverWaitGroup)

	log.Info("Vellum API is ready to serve calls!", "conn", connection)
	serverWaitGroup.Wait()
}

func connectToDatabase(useLocalDatabase bool, config *config.VellumConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if useLocalDatabase {
		log.Info("Connecting to local SQLite database", "path", config.Database.LocalFile)

		db, err = gorm.Open(sqlite.Open(config.Database.LocalFile), &gorm.Config{})
	} else {
		connection := fmt.Sprintf("%s@%s:%d/%s", config.Database.User, config.Database.Host, config.Database.Port, config.Database.Database)
		log.Info("Connecting to remote PostgreSQL database", "conn", connection)

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d",
			config.Database.Host,
			config.Database.User,
			os.Getenv("VL_DATABASE_PASSWORD"),
			config.Database.Database,
			config.Database.Port,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("Failed to connect to database: %s", err.Error())
		os.Exit(1)
	}

	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&user.User{},
		&role.Role{},
		&collection.Collection{},
		&collection.Field{},
		&permission.Permission{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %s", err.Error())
		os.Exit(1)
	}
}

func startWebServer(server *gin.Engine, socket string, waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()

	if err := server.Run(socket); err != nil {
		log.Fatalf("Failed to start web server on %s: %s", socket, err.Error())
	}
}
