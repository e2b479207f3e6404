package services

import (
	DB "Backend-RODO-Panel/src/database"
	"Backend-RODO-Panel/src/models"
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID - fetch one account, password stripped.
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = DB.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// UpdateProfile changes name/email for the settings page.
func UpdateProfile(id, name, email string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}

	ctx := context.Background()
	email = strings.ToLower(email)

	// The new email must not belong to someone else.
	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email, "_id": bson.M{"$ne": objID}})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email is already registered")
	}

	update := bson.M{"$set": bson.M{"name": name, "email": email}}
	_, err = DB.UserCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	return err
}

// ChangePassword verifies the old password before writing the new hash.
func ChangePassword(id, oldPassword, newPassword string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid user ID")
	}

	ctx := context.Background()

	var user models.User
	if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		return errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = DB.UserCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"password": string(hashed)}})
	return err
}
