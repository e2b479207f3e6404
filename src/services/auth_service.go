package services

import (
	DB "Backend-RODO-Panel/src/database"
	"Backend-RODO-Panel/src/models"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// RegisterUser creates a USER account with a bcrypt-hashed password.
func RegisterUser(user *models.User) error {
	ctx := context.Background()
	email := strings.ToLower(user.Email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.ID = primitive.NewObjectID()
	user.Email = email
	user.Password = string(hashed)
	user.Role = "USER"
	user.CreatedAt = time.Now()

	_, err = DB.UserCollection.InsertOne(ctx, user)
	return err
}

// AuthenticateUser checks email + password and returns the account with the
// password stripped.
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	dbUser.Password = ""
	return &dbUser, nil
}

// IsRateLimited reports whether this email has burned through its login
// attempts. Without Redis there is no rate limiting.
func IsRateLimited(email string) bool {
	if DB.RedisClient == nil {
		return false
	}

	key := loginAttemptsKey(email)
	attempts, err := DB.RedisClient.Get(DB.RedisCtx, key).Int()
	if err != nil {
		return false
	}
	return attempts >= maxLoginAttempts
}

// GetRemainingCooldownTime - how long until the account may try again.
func GetRemainingCooldownTime(email string) time.Duration {
	if DB.RedisClient == nil {
		return 0
	}

	ttl, err := DB.RedisClient.TTL(DB.RedisCtx, loginAttemptsKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt counts failed attempts in Redis; a successful login
// clears the counter.
func LogLoginAttempt(email, ip string, success bool) {
	if success {
		log.Printf("✅ Login success: %s from %s", email, ip)
	} else {
		log.Printf("⚠️ Login failed: %s from %s", email, ip)
	}

	if DB.RedisClient == nil {
		return
	}

	key := loginAttemptsKey(email)
	if success {
		DB.RedisClient.Del(DB.RedisCtx, key)
		return
	}

	attempts, err := DB.RedisClient.Incr(DB.RedisCtx, key).Result()
	if err != nil {
		log.Println("❌ Failed to record login attempt:", err)
		return
	}
	if attempts == 1 {
		DB.RedisClient.Expire(DB.RedisCtx, key, loginCooldown)
	}
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
}
