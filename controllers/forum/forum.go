package forumController

import (
	"iapt/database"
	"iapt/middleware"
	"iapt/models"

	"github.com/gofiber/fiber/v2"
)

// GetTopics lists forum topics, most recent first
func GetTopics(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.ForumTopic{}).Where("is_deleted = false")

	var total int64
	query.Count(&total)

	var topics []models.ForumTopic
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&topics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", fiber.Map{
		"topics": topics,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CreateTopic opens a new discussion thread
func CreateTopic(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedTopic").(*struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	})

	topic := models.ForumTopic{
		UserID:  userID,
		Title:   reqData.Title,
		Content: reqData.Content,
	}

	if err := database.Database.Db.Create(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}

// GetTopicWithReplies returns one topic and its replies in posting order
func GetTopicWithReplies(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(int)

	var topic models.ForumTopic
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", topicID).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	var replies []models.ForumReply
	database.Database.Db.Where("topic_id = ? AND is_deleted = false", topicID).Order("created_at asc").Find(&replies)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic fetched successfully!", fiber.Map{
		"topic":   topic,
		"replies": replies,
	})
}

// CreateReply posts an answer in a topic
func CreateReply(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := c.Locals("topicID").(int)

	var topic models.ForumTopic
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", topicID).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	reqData := c.Locals("validatedReply").(*struct {
		Content string `json:"content"`
	})

	reply := models.ForumReply{
		TopicID: uint(topicID),
		UserID:  userID,
		Content: reqData.Content,
	}

	if err := database.Database.Db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply created successfully!", reply)
}
