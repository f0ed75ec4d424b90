package blogController

import (
	"errors"
	"log"
	"time"

	"iapt/database"
	"iapt/middleware"
	"iapt/models"
	"iapt/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPublishedPosts lists published blog posts
func GetPublishedPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.BlogPost{}).Where("is_published = true AND is_deleted = false")

	var total int64
	query.Count(&total)

	var posts []models.BlogPost
	if err := query.Order("published_at desc").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Posts fetched successfully!", fiber.Map{
		"posts": posts,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetPostBySlug returns one published post
func GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var post models.BlogPost
	if err := database.Database.Db.Where("slug = ? AND is_published = true AND is_deleted = false", slug).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", post)
}

// AdminGeneratePost asks the AI gateway for a draft article and stores it
// unpublished. Upstream 429 and 402 are passed through verbatim, the two call
// for different user messaging.
func AdminGeneratePost(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData := c.Locals("validatedBlogGenerate").(*struct {
		Content string `json:"content"`
	})

	article, err := utils.GenerateBlogArticle(reqData.Content)
	if err != nil {
		var aiErr *utils.AIError
		if errors.As(err, &aiErr) {
			return middleware.JsonResponse(c, aiErr.StatusCode, false, aiErr.Message, nil)
		}
		log.Printf("Blog generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate article!", nil)
	}

	post := models.BlogPost{
		AuthorID: userID,
		Title:    article.Title,
		Slug:     utils.Slugify(article.Title),
		Content:  article.Content,
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Article generated successfully!", post)
}

// AdminPublishPost makes a draft post public
func AdminPublishPost(c *fiber.Ctx) error {
	postID := c.Locals("postID").(int)

	var post models.BlogPost
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", postID).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}

	now := time.Now()
	if err := database.Database.Db.Model(&post).Updates(map[string]interface{}{
		"is_published": true,
		"published_at": &now,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post published successfully!", post)
}
