package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	ChapterCollection     *mongo.Collection
	AreaCollection        *mongo.Collection
	RequirementCollection *mongo.Collection
	AssessmentCollection  *mongo.Collection
	ResponseCollection    *mongo.Collection
	AreaScoreCollection   *mongo.Collection
	UserCollection        *mongo.Collection
)

// DBName is the main database for the panel.
const DBName = "RodoPanelDB"

// ConnectMongoDB connects to MongoDB exactly once.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")

		ChapterCollection = GetCollection(DBName, "chapters")
		AreaCollection = GetCollection(DBName, "areas")
		RequirementCollection = GetCollection(DBName, "requirements")
		AssessmentCollection = GetCollection(DBName, "assessments")
		ResponseCollection = GetCollection(DBName, "responses")
		AreaScoreCollection = GetCollection(DBName, "areaScores")
		UserCollection = GetCollection(DBName, "users")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
