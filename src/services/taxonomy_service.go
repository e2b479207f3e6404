package services

import (
	DB "Backend-RODO-Panel/src/database"
	"Backend-RODO-Panel/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The taxonomy is reference data: seeded once, read many, never touched by
// end users. Everything here sorts by orderNumber so clients get the
// questionnaire in canonical order.

// GetAllChapters - all chapters, display order.
func GetAllChapters() ([]models.Chapter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "orderNumber", Value: 1}})
	cursor, err := DB.ChapterCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var chapters []models.Chapter
	if err = cursor.All(ctx, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// GetAreasByChapter - areas of one chapter, display order. Unknown chapter
// ids just come back empty.
func GetAreasByChapter(chapterID string) ([]models.Area, error) {
	objID, err := primitive.ObjectIDFromHex(chapterID)
	if err != nil {
		return nil, errors.New("invalid chapter ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "orderNumber", Value: 1}})
	cursor, err := DB.AreaCollection.Find(ctx, bson.M{"chapterId": objID}, opts)
	if err != nil {
		return nil, err
	}
	var areas []models.Area
	if err = cursor.All(ctx, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

// GetRequirementsByArea - requirements of one area, display order.
func GetRequirementsByArea(areaID string) ([]models.Requirement, error) {
	objID, err := primitive.ObjectIDFromHex(areaID)
	if err != nil {
		return nil, errors.New("invalid area ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "orderNumber", Value: 1}})
	cursor, err := DB.RequirementCollection.Find(ctx, bson.M{"areaId": objID}, opts)
	if err != nil {
		return nil, err
	}
	var requirements []models.Requirement
	if err = cursor.All(ctx, &requirements); err != nil {
		return nil, err
	}
	return requirements, nil
}
